package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Repository returns domain.ErrNotFound for missing records. Reads return
// bookings with their User and Salon populated.
type Repository interface {
	// -------- Lookups --------
	GetSalonByID(
		ctx context.Context,
		id string,
	) (*models.Salon, error)

	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// Newest first.
	ListBookingsByUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	// Oldest first.
	ListBookingsBySalon(
		ctx context.Context,
		salonID string,
	) ([]models.Booking, error)
}
