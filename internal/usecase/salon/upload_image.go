package salon

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

type UploadSalonImage struct {
	repo  salondomain.Repository
	store media.Store
	audit *audit.Dispatcher
}

// NewUploadSalonImage accepts a nil store; uploads then fail as unavailable.
func NewUploadSalonImage(
	repo salondomain.Repository,
	store media.Store,
	audit *audit.Dispatcher,
) *UploadSalonImage {
	return &UploadSalonImage{repo: repo, store: store, audit: audit}
}

func (uc *UploadSalonImage) Execute(
	ctx context.Context,
	id session.Identity,
	salonID string,
	image io.Reader,
) (*models.Salon, error) {

	s, err := loadOwned(ctx, uc.repo, id, salonID, true)
	if err != nil {
		return nil, err
	}

	if uc.store == nil {
		return nil, salondomain.ErrStoreDisabled
	}

	body, err := media.ToWebP(image, media.MaxWidth)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("salons/%s/%s.webp", s.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, body, media.ContentTypeWebP)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AddSalonImage(ctx, s.ID, url); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   id.UserID,
		Action:   audit.ActionSalonImageAdded,
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"url": url},
	})

	return getSalon(ctx, uc.repo, s.ID)
}
