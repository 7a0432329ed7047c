package repository

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// salonDocument is the text indexed for free-text search. It must match the
// expression of idx_salons_search so the planner can use the index.
const salonDocument = `to_tsvector('simple', coalesce(name, '') || ' ' || coalesce(description, '') || ' ' || coalesce(city, '') || ' ' || coalesce(jsonb_path_query_array(services, '$[*].name')::text, ''))`

// Haversine in km; parameters are lat, lat, lon.
const distanceExpr = `(6371 * 2 * ASIN(SQRT(
	POWER(SIN(RADIANS(location_lat - ?) / 2), 2) +
	COS(RADIANS(?)) * COS(RADIANS(location_lat)) *
	POWER(SIN(RADIANS(location_lon - ?) / 2), 2)
)))`

// EnsureSalonIndexes creates the indexes AutoMigrate cannot express.
func EnsureSalonIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_salons_search ON salons USING GIN (` + salonDocument + `)`,
		`CREATE INDEX IF NOT EXISTS idx_salons_city_lower ON salons (lower(city))`,
		`CREATE INDEX IF NOT EXISTS idx_salons_location ON salons (location_lat, location_lon)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return wrap("repository.EnsureSalonIndexes", err)
		}
	}
	return nil
}

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "email")
	})
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *SalonGormRepository) CreateSalon(ctx context.Context, s *models.Salon) error {
	return wrap("repository.CreateSalon",
		r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error)
}

func (r *SalonGormRepository) SaveSalon(ctx context.Context, s *models.Salon) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(s)
	return wrap("repository.SaveSalon", res.Error)
}

func (r *SalonGormRepository) SetSalonActive(ctx context.Context, id string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return wrap("repository.SetSalonActive", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("repository.SetSalonActive", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *SalonGormRepository) AddSalonImage(ctx context.Context, id, url string) error {
	item, err := json.Marshal([]string{url})
	if err != nil {
		return wrap("repository.AddSalonImage", err)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		Update("images", gorm.Expr("COALESCE(images, '[]'::jsonb) || ?::jsonb", string(item)))
	if res.Error != nil {
		return wrap("repository.AddSalonImage", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("repository.AddSalonImage", gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *SalonGormRepository) GetSalonByID(ctx context.Context, id string) (*models.Salon, error) {
	return getSalon(ctx, r.db, id)
}

func getSalon(ctx context.Context, db *gorm.DB, id string) (*models.Salon, error) {
	var s models.Salon
	if err := withOwner(db.WithContext(ctx)).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, wrap("repository.GetSalonByID", err)
	}
	return &s, nil
}

func (r *SalonGormRepository) ListSalonsByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	salons := make([]models.Salon, 0)
	if err := withOwner(r.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&salons).Error; err != nil {
		return nil, wrap("repository.ListSalonsByOwner", err)
	}
	return salons, nil
}

func (r *SalonGormRepository) ListActiveSalons(ctx context.Context, f salon.Filter) ([]models.Salon, int64, error) {
	const op = "repository.ListActiveSalons"

	q := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("is_active = ?", true)

	if city := strings.TrimSpace(f.City); city != "" {
		q = q.Where("city ILIKE ?", "%"+escapeLike(city)+"%")
	}

	if len(f.Services) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(salons.services) AS svc WHERE svc->>'name' IN ?)",
			f.Services,
		)
	}

	var order []string
	var orderVars []any

	if f.Near != nil {
		q = q.Where(distanceExpr+" <= ?", f.Near.Lat, f.Near.Lat, f.Near.Lon, f.Near.MaxDistanceKm)
		order = append(order, distanceExpr+" ASC")
		orderVars = append(orderVars, f.Near.Lat, f.Near.Lat, f.Near.Lon)
	}

	if terms := salon.Terms(f.Search); len(terms) > 0 {
		tsQuery := strings.Join(terms, " | ")
		q = q.Where(salonDocument+" @@ to_tsquery('simple', ?)", tsQuery)
		order = append(order, "ts_rank("+salonDocument+", to_tsquery('simple', ?)) DESC")
		orderVars = append(orderVars, tsQuery)
	}

	order = append(order, "created_at DESC")

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(op, err)
	}

	salons := make([]models.Salon, 0)
	if err := withOwner(q).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                strings.Join(order, ", "),
			Vars:               orderVars,
			WithoutParentheses: true,
		}}).
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&salons).Error; err != nil {
		return nil, 0, wrap(op, err)
	}

	if f.Near != nil {
		origin := models.GeoPoint{Lon: f.Near.Lon, Lat: f.Near.Lat}
		for i := range salons {
			d := geocode.DistanceKm(origin, salons[i].Location)
			salons[i].DistanceKm = &d
		}
	}

	return salons, total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ salon.Repository = (*SalonGormRepository)(nil)
