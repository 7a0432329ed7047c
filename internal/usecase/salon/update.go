package salon

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

// ======================================================
// Update
// ======================================================

type UpdateSalon struct {
	repo     salondomain.Repository
	geocoder geocode.Geocoder
	audit    *audit.Dispatcher
	log      *slog.Logger
}

func NewUpdateSalon(
	repo salondomain.Repository,
	geocoder geocode.Geocoder,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *UpdateSalon {
	return &UpdateSalon{
		repo:     repo,
		geocoder: geocoder,
		audit:    audit,
		log:      log,
	}
}

func (uc *UpdateSalon) Execute(
	ctx context.Context,
	id session.Identity,
	salonID string,
	in Fields,
) (*models.Salon, error) {

	s, err := loadOwned(ctx, uc.repo, id, salonID, true)
	if err != nil {
		return nil, err
	}

	addressChanged := in.apply(s)

	if err := salondomain.Validate(s); err != nil {
		return nil, err
	}

	if addressChanged {
		point, err := locate(ctx, uc.geocoder, uc.log, s)
		if err != nil {
			return nil, err
		}
		s.Location = point
	}

	if err := uc.repo.SaveSalon(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   id.UserID,
		Action:   audit.ActionSalonUpdated,
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]bool{"addressChanged": addressChanged},
	})

	return getSalon(ctx, uc.repo, s.ID)
}

// ======================================================
// Reactivate
// ======================================================

// ReactivateSalon undoes a soft delete. It checks ownership only and does
// not re-validate the stored document.
type ReactivateSalon struct {
	repo  salondomain.Repository
	audit *audit.Dispatcher
}

func NewReactivateSalon(repo salondomain.Repository, audit *audit.Dispatcher) *ReactivateSalon {
	return &ReactivateSalon{repo: repo, audit: audit}
}

func (uc *ReactivateSalon) Execute(
	ctx context.Context,
	id session.Identity,
	salonID string,
) (*models.Salon, error) {

	s, err := loadOwned(ctx, uc.repo, id, salonID, false)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetSalonActive(ctx, s.ID, true); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   id.UserID,
		Action:   audit.ActionSalonReactivated,
		Entity:   "salon",
		EntityID: s.ID,
	})

	return getSalon(ctx, uc.repo, s.ID)
}
