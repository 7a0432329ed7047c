package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func getSalon(ctx context.Context, repo bookingdomain.Repository, id string) (*models.Salon, error) {
	s, err := repo.GetSalonByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, salondomain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func getBooking(ctx context.Context, repo bookingdomain.Repository, id string) (*models.Booking, error) {
	b, err := repo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, bookingdomain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
