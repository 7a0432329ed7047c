package salon

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

var (
	ErrNotFound          = httperr.NotFound("salon_not_found", "Salon not found")
	ErrCoordinatesNeeded = httperr.Validation("coordinates_required", "Latitude and longitude are required")
	ErrStoreDisabled     = httperr.Unavailable("image_store_disabled", "Image uploads are not configured")
)

func invalid(message string) error {
	return httperr.Validation("invalid_salon", message)
}
