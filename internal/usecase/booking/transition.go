package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type TransitionInput struct {
	BookingID string
	Status    string
	Reason    string
}

type TransitionBooking struct {
	repo    bookingdomain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewTransitionBooking(
	repo bookingdomain.Repository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	now func() time.Time,
) *TransitionBooking {
	if now == nil {
		now = time.Now
	}
	return &TransitionBooking{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		now:     now,
	}
}

var transitionActions = map[bookingdomain.Status]string{
	bookingdomain.StatusConfirmed: audit.ActionBookingConfirmed,
	bookingdomain.StatusCompleted: audit.ActionBookingCompleted,
	bookingdomain.StatusCancelled: audit.ActionBookingCancelled,
}

func (uc *TransitionBooking) Execute(
	ctx context.Context,
	id session.Identity,
	in TransitionInput,
) (*models.Booking, error) {

	target, err := bookingdomain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	b, err := getBooking(ctx, uc.repo, in.BookingID)
	if err != nil {
		return nil, err
	}

	salon, err := getSalon(ctx, uc.repo, b.SalonID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Who is asking
	// --------------------------------------------------
	isOwner := salon.OwnerID == id.UserID
	isCustomer := b.UserID == id.UserID

	if !isOwner && !isCustomer {
		return nil, bookingdomain.ErrForbidden
	}
	if !isOwner && target != bookingdomain.StatusCancelled {
		return nil, bookingdomain.ErrCustomerCanOnlyCancel
	}

	// --------------------------------------------------
	// State change
	// --------------------------------------------------
	from := b.Status
	if target == bookingdomain.StatusCancelled {
		by := bookingdomain.CancelledByUser
		if isOwner {
			by = bookingdomain.CancelledByOwner
		}
		now := uc.now().In(timezone.Location(salon.Timezone))
		if err := bookingdomain.Cancel(b, by, in.Reason, now); err != nil {
			return nil, err
		}
	} else if err := bookingdomain.Advance(b, target); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.metrics.BookingTransitioned(b.Status)
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		UserID:   id.UserID,
		Action:   transitionActions[target],
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"from": from, "to": b.Status},
	})

	return getBooking(ctx, uc.repo, b.ID)
}

// CancelBooking is Transition with the cancelled target.
type CancelBooking struct {
	transition *TransitionBooking
}

func NewCancelBooking(transition *TransitionBooking) *CancelBooking {
	return &CancelBooking{transition: transition}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	id session.Identity,
	bookingID string,
	reason string,
) (*models.Booking, error) {
	return uc.transition.Execute(ctx, id, TransitionInput{
		BookingID: bookingID,
		Status:    string(bookingdomain.StatusCancelled),
		Reason:    reason,
	})
}
