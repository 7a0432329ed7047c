package booking

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const maxNotesLength = 500

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID     string
	Services    []string
	Date        string
	Time        string
	Notes       string
	TotalAmount float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    bookingdomain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewCreateBooking(
	repo bookingdomain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	now func() time.Time,
) *CreateBooking {
	if now == nil {
		now = time.Now
	}
	return &CreateBooking{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		now:     now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute does not check service names against the salon catalog nor
// look for overlapping bookings.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	id session.Identity,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	services := make([]string, 0, len(in.Services))
	for _, s := range in.Services {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}

	if in.SalonID == "" || len(services) == 0 || in.Date == "" || in.Time == "" {
		return nil, bookingdomain.ErrMissingFields
	}
	if !validators.IsClock(in.Time) {
		return nil, bookingdomain.ErrInvalidTime
	}
	day, err := validators.NormalizeDate(in.Date)
	if err != nil {
		return nil, bookingdomain.ErrInvalidDate
	}
	if utf8.RuneCountInString(in.Notes) > maxNotesLength {
		return nil, bookingdomain.ErrNotesTooLong
	}
	if in.TotalAmount < 0 {
		return nil, bookingdomain.ErrNegativeAmount
	}

	// --------------------------------------------------
	// Salon
	// --------------------------------------------------
	salon, err := getSalon(ctx, uc.repo, in.SalonID)
	if err != nil {
		return nil, err
	}
	if !salon.IsActive {
		return nil, bookingdomain.ErrSalonInactive
	}

	// --------------------------------------------------
	// Date, compared by day in the salon timezone
	// --------------------------------------------------
	loc := timezone.Location(salon.Timezone)
	now := uc.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	bookingDay, err := validators.DayIn(day, loc)
	if err != nil {
		return nil, bookingdomain.ErrInvalidDate
	}
	if bookingDay.Before(today) {
		return nil, bookingdomain.ErrPastDate
	}

	if salon.OwnerID == id.UserID {
		return nil, bookingdomain.ErrOwnSalon
	}

	// --------------------------------------------------
	// Customer snapshot
	// --------------------------------------------------
	customer, err := uc.repo.GetUserByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:      id.UserID,
		SalonID:     salon.ID,
		Services:    services,
		Date:        day,
		Time:        in.Time,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      string(bookingdomain.InitialStatus()),
		TotalAmount: in.TotalAmount,
	}
	bookingdomain.Snapshot(b, customer, salon)

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   id.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"date": b.Date, "time": b.Time},
	})

	return getBooking(ctx, uc.repo, b.ID)
}
