package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;not null;index:idx_bookings_user_date,priority:1" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`

	SalonID string `gorm:"type:uuid;not null;index:idx_bookings_salon_date,priority:1" json:"salonId"`
	Salon   *Salon `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"salon,omitempty"`

	Services []string `gorm:"type:jsonb;serializer:json;not null" json:"services"`

	// Calendar day (YYYY-MM-DD) and clock time (HH:MM) in the salon timezone.
	Date string `gorm:"size:10;not null;index:idx_bookings_salon_date,priority:2;index:idx_bookings_user_date,priority:2" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Notes       string  `gorm:"size:500" json:"notes"`
	Status      string  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TotalAmount float64 `gorm:"not null;default:0" json:"totalAmount"`

	CustomerName  string `gorm:"size:100" json:"customerName"`
	CustomerEmail string `gorm:"size:100" json:"customerEmail"`
	CustomerPhone string `gorm:"size:20" json:"customerPhone"`

	SalonName    string `gorm:"size:100" json:"salonName"`
	SalonAddress string `gorm:"size:500" json:"salonAddress"`
	SalonPhone   string `gorm:"size:30" json:"salonPhone"`

	CancellationReason string     `gorm:"size:500" json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy        string     `gorm:"size:10" json:"cancelledBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
