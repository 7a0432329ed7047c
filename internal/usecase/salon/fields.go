package salon

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/policy"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

// Fields is the editable part of a salon. Nil members are left untouched.
type Fields struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Province    *string
	PostalCode  *string
	Phone       *string
	Email       *string
	Website     *string
	Timezone    *string

	Services     *[]models.SalonService
	OpeningHours *models.OpeningHours
}

// apply copies the set fields onto s and reports whether any address
// component changed.
func (f Fields) apply(s *models.Salon) (addressChanged bool) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}

	set(&s.Name, f.Name)
	set(&s.Description, f.Description)
	set(&s.Phone, f.Phone)
	set(&s.Email, f.Email)
	set(&s.Website, f.Website)
	set(&s.Timezone, f.Timezone)

	for _, v := range []*string{f.Address, f.City, f.Province, f.PostalCode} {
		if v != nil {
			addressChanged = true
		}
	}
	set(&s.Address, f.Address)
	set(&s.City, f.City)
	set(&s.Province, f.Province)
	set(&s.PostalCode, f.PostalCode)

	if f.Services != nil {
		s.Services = append([]models.SalonService{}, (*f.Services)...)
	}
	if f.OpeningHours != nil {
		s.OpeningHours = f.OpeningHours.WithDefaults()
	}
	return addressChanged
}

func getSalon(ctx context.Context, repo salondomain.Repository, id string) (*models.Salon, error) {
	s, err := repo.GetSalonByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, salondomain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// loadOwned fetches a salon the caller owns. The optional role check runs
// before the lookup.
func loadOwned(
	ctx context.Context,
	repo salondomain.Repository,
	id session.Identity,
	salonID string,
	requireOwnerRole bool,
) (*models.Salon, error) {

	if requireOwnerRole {
		if err := policy.RequireRole(models.RoleOwner, id); err != nil {
			return nil, err
		}
	}

	s, err := getSalon(ctx, repo, salonID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireOwner(s.OwnerID, id); err != nil {
		return nil, err
	}
	return s, nil
}
