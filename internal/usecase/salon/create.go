package salon

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/policy"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

type CreateSalon struct {
	repo     salondomain.Repository
	geocoder geocode.Geocoder
	audit    *audit.Dispatcher
	log      *slog.Logger
}

func NewCreateSalon(
	repo salondomain.Repository,
	geocoder geocode.Geocoder,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *CreateSalon {
	return &CreateSalon{
		repo:     repo,
		geocoder: geocoder,
		audit:    audit,
		log:      log,
	}
}

func (uc *CreateSalon) Execute(
	ctx context.Context,
	id session.Identity,
	in Fields,
) (*models.Salon, error) {

	if err := policy.RequireRole(models.RoleOwner, id); err != nil {
		return nil, err
	}

	s := &models.Salon{
		OwnerID:  id.UserID,
		IsActive: true,
		Services: []models.SalonService{},
		Images:   []string{},
	}
	in.apply(s)
	s.OpeningHours = s.OpeningHours.WithDefaults()

	if err := salondomain.Validate(s); err != nil {
		return nil, err
	}

	point, err := locate(ctx, uc.geocoder, uc.log, s)
	if err != nil {
		return nil, err
	}
	s.Location = point

	if err := uc.repo.CreateSalon(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   id.UserID,
		Action:   audit.ActionSalonCreated,
		Entity:   "salon",
		EntityID: s.ID,
		Metadata: map[string]string{"name": s.Name, "city": s.City},
	})

	return s, nil
}

func locate(
	ctx context.Context,
	g geocode.Geocoder,
	log *slog.Logger,
	s *models.Salon,
) (models.GeoPoint, error) {

	res, err := g.Geocode(ctx, geocode.Address{
		Street:     s.Address,
		City:       s.City,
		Province:   s.Province,
		PostalCode: s.PostalCode,
	})
	if err != nil {
		return models.GeoPoint{}, err
	}

	if res.Fallback {
		log.Warn("unknown city, using default coordinates",
			slog.String("city", s.City),
			slog.String("salon_id", s.ID),
		)
	}
	return res.Point, nil
}
