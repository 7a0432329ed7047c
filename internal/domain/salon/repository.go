package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Repository returns domain.ErrNotFound for missing salons. Reads attach
// the owner summary.
type Repository interface {
	CreateSalon(ctx context.Context, s *models.Salon) error
	GetSalonByID(ctx context.Context, id string) (*models.Salon, error)
	SaveSalon(ctx context.Context, s *models.Salon) error

	SetSalonActive(ctx context.Context, id string, active bool) error
	AddSalonImage(ctx context.Context, id, url string) error

	// ListActiveSalons expects a normalized filter and returns the page
	// plus the total number of matches.
	ListActiveSalons(ctx context.Context, f Filter) ([]models.Salon, int64, error)
	ListSalonsByOwner(ctx context.Context, ownerID string) ([]models.Salon, error)
}
