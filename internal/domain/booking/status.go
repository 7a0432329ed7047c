package booking

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// CancelledBy records which side cancelled a booking.
type CancelledBy string

const (
	CancelledByUser  CancelledBy = "user"
	CancelledByOwner CancelledBy = "owner"
	// Reserved for back-office tooling; no request path sets it.
	CancelledByAdmin CancelledBy = "admin"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, nil
	}
	return "", ErrInvalidStatus
}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// pending is never a target; cancellation has its own guard.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCompleted},
	StatusConfirmed: {StatusCompleted},
}

// ===============================
// Validations
// ===============================

// CanTransition validates a move to confirmed or completed.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.Validation(
		"invalid_status",
		"Booking cannot move from "+string(from)+" to "+string(to),
	)
}

// CanCancel checks the status half of the cancellation rule.
func CanCancel(current Status) error {
	if current.IsTerminal() {
		return ErrNotCancellable
	}
	return nil
}
