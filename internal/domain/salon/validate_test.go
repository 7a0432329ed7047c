package salon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func validSalon() *models.Salon {
	return &models.Salon{
		Name:         "Shear Joy",
		Address:      "1 Main St",
		City:         "Boston",
		Province:     "MA",
		Email:        "hi@shear.joy",
		OpeningHours: models.DefaultOpeningHours(),
	}
}

func TestValidate(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name   string
		mutate func(s *models.Salon)
		msg    string
	}{
		{"ok", func(s *models.Salon) {}, ""},
		{"missing name", func(s *models.Salon) { s.Name = " " }, "Salon name is required"},
		{"long name", func(s *models.Salon) { s.Name = strings.Repeat("a", 101) }, "Salon name cannot exceed 100 characters"},
		{"long description", func(s *models.Salon) { s.Description = strings.Repeat("a", 1001) }, "Description cannot exceed 1000 characters"},
		{"missing address", func(s *models.Salon) { s.Address = "" }, "Address is required"},
		{"missing city", func(s *models.Salon) { s.City = "" }, "City is required"},
		{"missing province", func(s *models.Salon) { s.Province = "" }, "Province is required"},
		{"bad email", func(s *models.Salon) { s.Email = "nope" }, "Please enter a valid email"},
		{"empty email allowed", func(s *models.Salon) { s.Email = "" }, ""},
		{"bad timezone", func(s *models.Salon) { s.Timezone = "Nowhere/City" }, "Unknown timezone Nowhere/City"},
		{"negative price", func(s *models.Salon) {
			s.Services = []models.SalonService{{Name: "Cut", Price: &negative}}
		}, "Service price cannot be negative"},
		{"bad hours", func(s *models.Salon) { s.OpeningHours.Monday = &models.DayHours{Open: "9am", Close: "18:00"} }, "Opening hours for monday must use HH:MM"},
		{"closed day without hours", func(s *models.Salon) { s.OpeningHours.Sunday = &models.DayHours{Closed: true} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSalon()
			tt.mutate(s)

			err := Validate(s)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
			assert.Equal(t, tt.msg, httperr.MessageOf(err))
		})
	}
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{Limit: 500, Near: &Near{Lat: 1, Lon: 2}}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, DefaultMaxDistanceKm, f.Near.MaxDistanceKm)
	assert.Equal(t, 0, f.Offset())

	f = Filter{Page: 3, Limit: 10}
	f.Normalize()
	assert.Equal(t, 20, f.Offset())
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"red", "hair", "o"}, Terms("Red, hair! RED o"))
	assert.Empty(t, Terms("  ,, "))
}
