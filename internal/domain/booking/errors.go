package booking

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

var (
	ErrNotFound  = httperr.NotFound("booking_not_found", "Booking not found")
	ErrForbidden = httperr.Forbidden("booking_forbidden", "You do not have permission to access this booking")

	ErrSalonBookingsForbidden = httperr.Forbidden("salon_bookings_forbidden", "You do not have permission to view these bookings")
	ErrCustomerCanOnlyCancel  = httperr.Forbidden("customer_can_only_cancel", "Users can only cancel bookings")

	ErrNotCancellable = httperr.Conflict("not_cancellable", "This booking cannot be cancelled")
	ErrInvalidStatus  = httperr.Validation("invalid_status", "Invalid status")

	ErrMissingFields  = httperr.Validation("missing_fields", "Salon ID, services, date, and time are required")
	ErrInvalidDate    = httperr.Validation("invalid_date", "Date must be in YYYY-MM-DD format")
	ErrInvalidTime    = httperr.Validation("invalid_time", "Time must be in HH:MM format")
	ErrPastDate       = httperr.Validation("past_date", "Cannot book appointments in the past")
	ErrNotesTooLong   = httperr.Validation("notes_too_long", "Notes cannot exceed 500 characters")
	ErrNegativeAmount = httperr.Validation("negative_amount", "Total amount cannot be negative")
	ErrSalonInactive  = httperr.Validation("salon_inactive", "This salon is currently not accepting bookings")
	ErrOwnSalon       = httperr.Validation("own_salon", "Owners cannot book their own salons")
)
