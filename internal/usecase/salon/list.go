package salon

import (
	"context"

	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/policy"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

type ListResult struct {
	Salons []models.Salon
	Total  int64
	Page   int
	Limit  int
}

// ======================================================
// Public listing
// ======================================================

type ListSalons struct {
	repo salondomain.Repository
}

func NewListSalons(repo salondomain.Repository) *ListSalons {
	return &ListSalons{repo: repo}
}

func (uc *ListSalons) Execute(ctx context.Context, f salondomain.Filter) (*ListResult, error) {
	f.Normalize()

	if f.Near != nil {
		if err := checkCoordinates(f.Near.Lat, f.Near.Lon); err != nil {
			return nil, err
		}
	}

	salons, total, err := uc.repo.ListActiveSalons(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{Salons: salons, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// ======================================================
// Nearby search
// ======================================================

type NearbyInput struct {
	Lat           *float64
	Lon           *float64
	MaxDistanceKm *float64
}

type SearchNearby struct {
	repo salondomain.Repository
}

func NewSearchNearby(repo salondomain.Repository) *SearchNearby {
	return &SearchNearby{repo: repo}
}

func (uc *SearchNearby) Execute(ctx context.Context, in NearbyInput) ([]models.Salon, error) {
	if in.Lat == nil || in.Lon == nil {
		return nil, salondomain.ErrCoordinatesNeeded
	}
	if err := checkCoordinates(*in.Lat, *in.Lon); err != nil {
		return nil, err
	}

	near := &salondomain.Near{Lat: *in.Lat, Lon: *in.Lon}
	if in.MaxDistanceKm != nil {
		near.MaxDistanceKm = *in.MaxDistanceKm
	}

	f := salondomain.Filter{Near: near, Page: 1, Limit: salondomain.NearbyLimit}
	f.Normalize()

	salons, _, err := uc.repo.ListActiveSalons(ctx, f)
	return salons, err
}

func checkCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return httperr.Validation("invalid_coordinates", "Latitude must be within ±90 and longitude within ±180")
	}
	return nil
}

// ======================================================
// Owner listing
// ======================================================

type ListMySalons struct {
	repo salondomain.Repository
}

func NewListMySalons(repo salondomain.Repository) *ListMySalons {
	return &ListMySalons{repo: repo}
}

func (uc *ListMySalons) Execute(ctx context.Context, id session.Identity) ([]models.Salon, error) {
	if err := policy.RequireRole(models.RoleOwner, id); err != nil {
		return nil, err
	}
	return uc.repo.ListSalonsByOwner(ctx, id.UserID)
}

// ======================================================
// Single salon
// ======================================================

type GetSalon struct {
	repo salondomain.Repository
}

func NewGetSalon(repo salondomain.Repository) *GetSalon {
	return &GetSalon{repo: repo}
}

// Execute returns inactive salons too; only listings hide them.
func (uc *GetSalon) Execute(ctx context.Context, salonID string) (*models.Salon, error) {
	return getSalon(ctx, uc.repo, salonID)
}
