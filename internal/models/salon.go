package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	Address     string `gorm:"size:255;not null" json:"address"`
	City        string `gorm:"size:100;not null;index" json:"city"`
	Province    string `gorm:"size:100;not null" json:"province"`
	PostalCode  string `gorm:"size:20" json:"postalCode"`
	Phone       string `gorm:"size:30" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Website     string `gorm:"size:255" json:"website"`
	Timezone    string `gorm:"size:64" json:"timezone,omitempty"`

	Services     []SalonService `gorm:"type:jsonb;serializer:json" json:"services"`
	OpeningHours OpeningHours   `gorm:"type:jsonb;serializer:json" json:"openingHours"`
	Location     GeoPoint       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Images       []string       `gorm:"type:jsonb;serializer:json" json:"images"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   *User  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"reviewCount"`
	IsActive    bool    `gorm:"not null;default:true;index" json:"isActive"`

	// Set only by nearby searches.
	DistanceKm *float64 `gorm:"-" json:"distanceKm,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ServiceNames flattens the catalog, used by search and booking validation.
func (s *Salon) ServiceNames() []string {
	names := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		names = append(names, svc.Name)
	}
	return names
}

// ===============================
// Services
// ===============================

type SalonService struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

// UnmarshalJSON accepts both a bare service name and the {name, price} object.
func (s *SalonService) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = SalonService{Name: name}
		return nil
	}

	type plain SalonService
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = SalonService(p)
	return nil
}

// ===============================
// Opening hours
// ===============================

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type OpeningHours struct {
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty"`
}

func DefaultOpeningHours() OpeningHours {
	weekday := func() *DayHours { return &DayHours{Open: "09:00", Close: "18:00"} }
	return OpeningHours{
		Monday:    weekday(),
		Tuesday:   weekday(),
		Wednesday: weekday(),
		Thursday:  weekday(),
		Friday:    weekday(),
		Saturday:  &DayHours{Open: "10:00", Close: "16:00"},
		Sunday:    &DayHours{Open: "10:00", Close: "16:00", Closed: true},
	}
}

// WithDefaults fills every missing day from DefaultOpeningHours.
func (o OpeningHours) WithDefaults() OpeningHours {
	def := DefaultOpeningHours()
	pick := func(v, d *DayHours) *DayHours {
		if v == nil {
			return d
		}
		return v
	}
	return OpeningHours{
		Monday:    pick(o.Monday, def.Monday),
		Tuesday:   pick(o.Tuesday, def.Tuesday),
		Wednesday: pick(o.Wednesday, def.Wednesday),
		Thursday:  pick(o.Thursday, def.Thursday),
		Friday:    pick(o.Friday, def.Friday),
		Saturday:  pick(o.Saturday, def.Saturday),
		Sunday:    pick(o.Sunday, def.Sunday),
	}
}

// Days returns the configured days keyed by lowercase weekday name.
func (o OpeningHours) Days() map[string]*DayHours {
	days := map[string]*DayHours{
		"monday":    o.Monday,
		"tuesday":   o.Tuesday,
		"wednesday": o.Wednesday,
		"thursday":  o.Thursday,
		"friday":    o.Friday,
		"saturday":  o.Saturday,
		"sunday":    o.Sunday,
	}
	for k, v := range days {
		if v == nil {
			delete(days, k)
		}
	}
	return days
}

// ===============================
// Location
// ===============================

// GeoPoint is stored as two columns and rendered as a GeoJSON point
// with coordinates in [longitude, latitude] order.
type GeoPoint struct {
	Lon float64 `gorm:"column:lon;not null;default:0" json:"-"`
	Lat float64 `gorm:"column:lat;not null;default:0" json:"-"`
}

type geoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{Type: "Point", Coordinates: [2]float64{p.Lon, p.Lat}})
}

func (p *GeoPoint) UnmarshalJSON(b []byte) error {
	var g geoJSONPoint
	if err := json.Unmarshal(b, &g); err != nil {
		return err
	}
	if g.Type != "" && g.Type != "Point" {
		return errors.New("location must be a GeoJSON Point")
	}
	p.Lon, p.Lat = g.Coordinates[0], g.Coordinates[1]
	return nil
}
