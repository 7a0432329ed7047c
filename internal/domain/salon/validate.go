package salon

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

// Validate checks the whole document; it runs on every create and update.
func Validate(s *models.Salon) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("Salon name is required")
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		return invalid("Salon name cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(s.Description) > MaxDescriptionLength {
		return invalid("Description cannot exceed 1000 characters")
	}
	if strings.TrimSpace(s.Address) == "" {
		return invalid("Address is required")
	}
	if strings.TrimSpace(s.City) == "" {
		return invalid("City is required")
	}
	if strings.TrimSpace(s.Province) == "" {
		return invalid("Province is required")
	}
	if s.Email != "" && !validators.IsEmail(s.Email) {
		return invalid("Please enter a valid email")
	}
	if s.Timezone != "" && !timezone.IsValid(s.Timezone) {
		return invalid("Unknown timezone " + s.Timezone)
	}

	for _, svc := range s.Services {
		if strings.TrimSpace(svc.Name) == "" {
			return invalid("Service name is required")
		}
		if svc.Price != nil && *svc.Price < 0 {
			return invalid("Service price cannot be negative")
		}
	}

	for day, h := range s.OpeningHours.Days() {
		if h.Closed && h.Open == "" && h.Close == "" {
			continue
		}
		if !validators.IsClock(h.Open) || !validators.IsClock(h.Close) {
			return invalid("Opening hours for " + day + " must use HH:MM")
		}
	}

	return nil
}
