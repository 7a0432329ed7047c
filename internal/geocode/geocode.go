package geocode

import (
	"context"
	"math"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
}

type Result struct {
	Point models.GeoPoint
	// Fallback is set when the city was unknown and the default point was used.
	Fallback bool
}

type Geocoder interface {
	Geocode(ctx context.Context, addr Address) (Result, error)
}

// Static resolves addresses by city name against a fixed table.
type Static struct {
	cities   map[string]models.GeoPoint
	fallback models.GeoPoint
}

var _ Geocoder = (*Static)(nil)

func NewStatic() *Static {
	return &Static{
		cities: map[string]models.GeoPoint{
			"los angeles":  {Lon: -118.2437, Lat: 34.0522},
			"new york":     {Lon: -74.0060, Lat: 40.7128},
			"chicago":      {Lon: -87.6298, Lat: 41.8781},
			"houston":      {Lon: -95.3698, Lat: 29.7604},
			"phoenix":      {Lon: -112.0740, Lat: 33.4484},
			"philadelphia": {Lon: -75.1652, Lat: 39.9526},
			"san antonio":  {Lon: -98.4936, Lat: 29.4241},
			"san diego":    {Lon: -117.1611, Lat: 32.7157},
			"dallas":       {Lon: -96.7970, Lat: 32.7767},
			"san jose":     {Lon: -121.8863, Lat: 37.3382},
			"miami":        {Lon: -80.1918, Lat: 25.7617},
			"atlanta":      {Lon: -84.3880, Lat: 33.7490},
			"seattle":      {Lon: -122.3321, Lat: 47.6062},
			"boston":       {Lon: -71.0589, Lat: 42.3601},
			"denver":       {Lon: -104.9903, Lat: 39.7392},
		},
		fallback: models.GeoPoint{Lon: -118.2437, Lat: 34.0522},
	}
}

func (s *Static) Geocode(ctx context.Context, addr Address) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	city := strings.ToLower(strings.TrimSpace(addr.City))
	if p, ok := s.cities[city]; ok {
		return Result{Point: p}, nil
	}
	return Result{Point: s.fallback, Fallback: true}, nil
}

const earthRadiusKm = 6371.0

// DistanceKm is the haversine great-circle distance between two points.
func DistanceKm(a, b models.GeoPoint) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
