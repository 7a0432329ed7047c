package booking

import (
	"context"

	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

// ======================================================
// Customer view
// ======================================================

type ListMyBookings struct {
	repo bookingdomain.Repository
}

func NewListMyBookings(repo bookingdomain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(ctx context.Context, id session.Identity) ([]models.Booking, error) {
	return uc.repo.ListBookingsByUser(ctx, id.UserID)
}

// ======================================================
// Salon view
// ======================================================

type ListSalonBookings struct {
	repo bookingdomain.Repository
}

func NewListSalonBookings(repo bookingdomain.Repository) *ListSalonBookings {
	return &ListSalonBookings{repo: repo}
}

func (uc *ListSalonBookings) Execute(
	ctx context.Context,
	id session.Identity,
	salonID string,
) ([]models.Booking, error) {

	salon, err := getSalon(ctx, uc.repo, salonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != id.UserID {
		return nil, bookingdomain.ErrSalonBookingsForbidden
	}

	return uc.repo.ListBookingsBySalon(ctx, salon.ID)
}

// ======================================================
// Single booking
// ======================================================

type GetBooking struct {
	repo bookingdomain.Repository
}

func NewGetBooking(repo bookingdomain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute lets the customer and the salon owner read the booking.
func (uc *GetBooking) Execute(
	ctx context.Context,
	id session.Identity,
	bookingID string,
) (*models.Booking, error) {

	b, err := getBooking(ctx, uc.repo, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID == id.UserID {
		return b, nil
	}

	salon, err := getSalon(ctx, uc.repo, b.SalonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != id.UserID {
		return nil, bookingdomain.ErrForbidden
	}
	return b, nil
}
