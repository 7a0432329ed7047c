package geocode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestStaticGeocode(t *testing.T) {
	g := NewStatic()
	ctx := context.Background()

	tests := []struct {
		city     string
		want     models.GeoPoint
		fallback bool
	}{
		{"New York", models.GeoPoint{Lon: -74.0060, Lat: 40.7128}, false},
		{"  seattle ", models.GeoPoint{Lon: -122.3321, Lat: 47.6062}, false},
		{"Toronto", models.GeoPoint{Lon: -118.2437, Lat: 34.0522}, true},
		{"", models.GeoPoint{Lon: -118.2437, Lat: 34.0522}, true},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			res, err := g.Geocode(ctx, Address{City: tt.city})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Point)
			assert.Equal(t, tt.fallback, res.Fallback)
		})
	}
}

func TestStaticGeocodeHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic().Geocode(ctx, Address{City: "Boston"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistanceKm(t *testing.T) {
	nyc := models.GeoPoint{Lon: -74.0060, Lat: 40.7128}
	boston := models.GeoPoint{Lon: -71.0589, Lat: 42.3601}

	assert.InDelta(t, 306, DistanceKm(nyc, boston), 3)
	assert.InDelta(t, 0, DistanceKm(nyc, nyc), 1e-9)
}
