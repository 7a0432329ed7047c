package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func populated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "phone", "role")
		}).
		Preload("Salon")
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(ctx context.Context, id string) (*models.Salon, error) {
	return getSalon(ctx, r.db, id)
}

func (r *BookingGormRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return getUser(ctx, r.db, id)
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return wrap("repository.CreateBooking",
		r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *BookingGormRepository) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := populated(r.db.WithContext(ctx)).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, wrap("repository.GetBookingByID", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return wrap("repository.UpdateBooking",
		r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

func (r *BookingGormRepository) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := populated(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		return nil, wrap("repository.ListBookingsByUser", err)
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := populated(r.db.WithContext(ctx)).
		Where("salon_id = ?", salonID).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, wrap("repository.ListBookingsBySalon", err)
	}
	return bookings, nil
}

var _ booking.Repository = (*BookingGormRepository)(nil)
