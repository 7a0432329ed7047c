package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ===============================
// Domain Actions
// ===============================

// StartsAt is the booking's start instant in loc.
func StartsAt(b *models.Booking, loc *time.Location) (time.Time, error) {
	return validators.At(b.Date, b.Time, loc)
}

// Cancellable holds when the booking is not terminal and starts after now.
// now must already be in the salon's timezone.
func Cancellable(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	start, err := StartsAt(b, now.Location())
	if err != nil || !start.After(now) {
		return ErrNotCancellable
	}
	return nil
}

func Cancel(b *models.Booking, by CancelledBy, reason string, now time.Time) error {
	if err := Cancellable(b, now); err != nil {
		return err
	}

	at := now
	b.Status = string(StatusCancelled)
	b.CancelledAt = &at
	b.CancelledBy = string(by)
	if r := strings.TrimSpace(reason); r != "" {
		b.CancellationReason = r
	}
	return nil
}

func Advance(b *models.Booking, to Status) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}
	b.Status = string(to)
	return nil
}

// Snapshot copies the customer and salon details the booking keeps even if
// the source records change later.
func Snapshot(b *models.Booking, customer *models.User, salon *models.Salon) {
	b.CustomerName = customer.Name
	b.CustomerEmail = customer.Email
	b.CustomerPhone = customer.Phone

	b.SalonName = salon.Name
	b.SalonAddress = strings.Join([]string{salon.Address, salon.City, salon.Province}, ", ")
	b.SalonPhone = salon.Phone
}
