package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION") != "true" {
		t.Skip("set RUN_INTEGRATION=true to run Postgres tests")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("salon_test"),
		postgres.WithUsername("salon"),
		postgres.WithPassword("salon"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func TestPostgresRepositories(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := repository.NewUserGormRepository(db)
	salons := repository.NewSalonGormRepository(db)
	bookings := repository.NewBookingGormRepository(db)
	logs := repository.NewAuditGormRepository(db)

	owner := &models.User{Name: "Olga", Email: "olga@x.ca", PasswordHash: "h", Role: models.RoleOwner}
	require.NoError(t, users.CreateUser(ctx, owner))

	t.Run("duplicate email", func(t *testing.T) {
		err := users.CreateUser(ctx, &models.User{Name: "O2", Email: "olga@x.ca", PasswordHash: "h", Role: models.RoleUser})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	customer := &models.User{Name: "Ana", Email: "ana@x.ca", PasswordHash: "h", Role: models.RoleUser}
	require.NoError(t, users.CreateUser(ctx, customer))

	price := 40.0
	boston := &models.Salon{
		Name: "Back Bay Color", Description: "hair color studio", Address: "1 Main St",
		City: "Boston", Province: "MA", OwnerID: owner.ID, IsActive: true,
		Services:     []models.SalonService{{Name: "Color", Price: &price}},
		OpeningHours: models.DefaultOpeningHours(),
		Location:     models.GeoPoint{Lon: -71.0589, Lat: 42.3601},
		Images:       []string{},
	}
	nyc := &models.Salon{
		Name: "Manhattan Cuts", Description: "classic cuts", Address: "2 Broadway",
		City: "New York", Province: "NY", OwnerID: owner.ID, IsActive: true,
		Services:     []models.SalonService{{Name: "Haircut"}},
		OpeningHours: models.DefaultOpeningHours(),
		Location:     models.GeoPoint{Lon: -74.0060, Lat: 40.7128},
		Images:       []string{},
	}
	require.NoError(t, salons.CreateSalon(ctx, boston))
	require.NoError(t, salons.CreateSalon(ctx, nyc))

	t.Run("get populates owner", func(t *testing.T) {
		got, err := salons.GetSalonByID(ctx, boston.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "Olga", got.Owner.Name)
		require.Len(t, got.Services, 1)
		assert.Equal(t, 40.0, *got.Services[0].Price)
		assert.Equal(t, boston.Location, got.Location)
	})

	t.Run("filters", func(t *testing.T) {
		list := func(f salon.Filter) []string {
			f.Normalize()
			got, _, err := salons.ListActiveSalons(ctx, f)
			require.NoError(t, err)
			var names []string
			for _, s := range got {
				names = append(names, s.Name)
			}
			return names
		}

		assert.Equal(t, []string{"Back Bay Color"}, list(salon.Filter{City: "bost"}))
		assert.Equal(t, []string{"Manhattan Cuts"}, list(salon.Filter{Services: []string{"Haircut"}}))
		assert.Equal(t, []string{"Manhattan Cuts"}, list(salon.Filter{Search: "classic"}))
		assert.Equal(t, []string{"Back Bay Color", "Manhattan Cuts"},
			list(salon.Filter{Near: &salon.Near{Lat: 42.36, Lon: -71.06, MaxDistanceKm: 500}}))
	})

	t.Run("soft delete and images", func(t *testing.T) {
		require.NoError(t, salons.SetSalonActive(ctx, nyc.ID, false))
		require.NoError(t, salons.AddSalonImage(ctx, nyc.ID, "https://cdn.test/a.webp"))

		f := salon.Filter{}
		f.Normalize()
		_, total, err := salons.ListActiveSalons(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		got, err := salons.GetSalonByID(ctx, nyc.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.Equal(t, []string{"https://cdn.test/a.webp"}, got.Images)

		assert.ErrorIs(t, salons.SetSalonActive(ctx, "00000000-0000-0000-0000-000000000000", true), domain.ErrNotFound)
	})

	t.Run("bookings", func(t *testing.T) {
		b := &models.Booking{
			UserID: customer.ID, SalonID: boston.ID, Services: []string{"Color"},
			Date: "2026-11-03", Time: "10:00", Status: "pending",
		}
		require.NoError(t, bookings.CreateBooking(ctx, b))

		got, err := bookings.GetBookingByID(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		require.NotNil(t, got.Salon)
		assert.Equal(t, "Ana", got.User.Name)
		assert.Equal(t, "Back Bay Color", got.Salon.Name)

		got.Status = "confirmed"
		require.NoError(t, bookings.UpdateBooking(ctx, got))

		mine, err := bookings.ListBookingsByUser(ctx, customer.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "confirmed", mine[0].Status)
	})

	t.Run("audit logs", func(t *testing.T) {
		require.NoError(t, logs.InsertAuditLog(ctx, &models.AuditLog{SalonID: boston.ID, Action: audit.ActionSalonCreated, Entity: "salon"}))
		require.NoError(t, logs.InsertAuditLog(ctx, &models.AuditLog{SalonID: boston.ID, Action: audit.ActionSalonUpdated, Entity: "salon"}))

		got, total, err := logs.ListAuditLogs(ctx, audit.Query{SalonID: boston.ID, Page: 1, Limit: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, audit.ActionSalonUpdated, got[0].Action)
	})
}
