package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

// DeleteSalon is a soft delete: the salon leaves listings but stays
// fetchable by id and keeps its bookings.
type DeleteSalon struct {
	repo  salondomain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSalon(repo salondomain.Repository, audit *audit.Dispatcher) *DeleteSalon {
	return &DeleteSalon{repo: repo, audit: audit}
}

func (uc *DeleteSalon) Execute(ctx context.Context, id session.Identity, salonID string) error {
	s, err := loadOwned(ctx, uc.repo, id, salonID, true)
	if err != nil {
		return err
	}

	if err := uc.repo.SetSalonActive(ctx, s.ID, false); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   id.UserID,
		Action:   audit.ActionSalonDeleted,
		Entity:   "salon",
		EntityID: s.ID,
	})
	return nil
}
