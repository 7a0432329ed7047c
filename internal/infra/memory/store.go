// Package memory is a process-local implementation of every repository,
// used with STORAGE_DRIVER=memory and as the fake in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users       map[string]models.User
	userByEmail map[string]string
	salons      map[string]models.Salon
	salonOrder  map[string]int64
	bookings    map[string]models.Booking
	auditLogs   []models.AuditLog
	seq         int64
	nextAuditID uint

	now func() time.Time
}

var (
	_ user.Repository    = (*Store)(nil)
	_ salon.Repository   = (*Store)(nil)
	_ booking.Repository = (*Store)(nil)
	_ audit.Store        = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:       make(map[string]models.User),
		userByEmail: make(map[string]string),
		salons:      make(map[string]models.Salon),
		salonOrder:  make(map[string]int64),
		bookings:    make(map[string]models.Booking),
		now:         time.Now,
	}
}

// WithClock sets the time source for CreatedAt/UpdatedAt stamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	const op = "memory.CreateUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, taken := s.userByEmail[email]; taken {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now

	s.users[u.ID] = *u
	s.userByEmail[email] = u.ID
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByEmail[strings.ToLower(email)]
	if !ok {
		return nil, notFound("memory.GetUserByEmail")
	}
	u := s.users[id]
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, notFound("memory.GetUserByID")
	}
	return &u, nil
}

// --------------------------------------------------
// Salons
// --------------------------------------------------

func cloneSalon(sl models.Salon) models.Salon {
	sl.Services = slices.Clone(sl.Services)
	sl.Images = slices.Clone(sl.Images)
	sl.Owner = nil
	sl.DistanceKm = nil
	return sl
}

// withOwner must be called with s.mu held.
func (s *Store) withOwner(sl models.Salon) models.Salon {
	out := cloneSalon(sl)
	if owner, ok := s.users[sl.OwnerID]; ok {
		out.Owner = &models.User{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}
	return out
}

func (s *Store) CreateSalon(ctx context.Context, sl *models.Salon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}
	now := s.now()
	sl.CreatedAt, sl.UpdatedAt = now, now

	s.seq++
	s.salons[sl.ID] = cloneSalon(*sl)
	s.salonOrder[sl.ID] = s.seq
	return nil
}

func (s *Store) GetSalonByID(ctx context.Context, id string) (*models.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.salons[id]
	if !ok {
		return nil, notFound("memory.GetSalonByID")
	}
	out := s.withOwner(sl)
	return &out, nil
}

func (s *Store) SaveSalon(ctx context.Context, sl *models.Salon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.salons[sl.ID]
	if !ok {
		return notFound("memory.SaveSalon")
	}
	sl.CreatedAt = prev.CreatedAt
	sl.UpdatedAt = s.now()
	s.salons[sl.ID] = cloneSalon(*sl)
	return nil
}

func (s *Store) SetSalonActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.salons[id]
	if !ok {
		return notFound("memory.SetSalonActive")
	}
	sl.IsActive = active
	sl.UpdatedAt = s.now()
	s.salons[id] = sl
	return nil
}

func (s *Store) AddSalonImage(ctx context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.salons[id]
	if !ok {
		return notFound("memory.AddSalonImage")
	}
	sl.Images = append(slices.Clone(sl.Images), url)
	sl.UpdatedAt = s.now()
	s.salons[id] = sl
	return nil
}

func (s *Store) ListActiveSalons(ctx context.Context, f salon.Filter) ([]models.Salon, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		salon    models.Salon
		score    int
		distance float64
		order    int64
	}

	terms := salon.Terms(f.Search)
	city := strings.ToLower(strings.TrimSpace(f.City))

	var hits []hit
	for id, sl := range s.salons {
		if !sl.IsActive {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(sl.City), city) {
			continue
		}
		if len(f.Services) > 0 && !offersAny(sl, f.Services) {
			continue
		}

		h := hit{salon: sl, order: s.salonOrder[id]}

		if len(terms) > 0 {
			h.score = relevance(sl, terms)
			if h.score == 0 {
				continue
			}
		}

		if f.Near != nil {
			h.distance = geocode.DistanceKm(models.GeoPoint{Lon: f.Near.Lon, Lat: f.Near.Lat}, sl.Location)
			if h.distance > f.Near.MaxDistanceKm {
				continue
			}
		}

		hits = append(hits, h)
	}

	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if f.Near != nil && a.distance != b.distance {
			return a.distance < b.distance
		}
		if len(terms) > 0 && a.score != b.score {
			return a.score > b.score
		}
		return a.order > b.order
	})

	total := int64(len(hits))

	start := min(f.Offset(), len(hits))
	end := min(start+f.Limit, len(hits))

	out := make([]models.Salon, 0, end-start)
	for _, h := range hits[start:end] {
		sl := s.withOwner(h.salon)
		if f.Near != nil {
			d := h.distance
			sl.DistanceKm = &d
		}
		out = append(out, sl)
	}
	return out, total, nil
}

func offersAny(sl models.Salon, services []string) bool {
	for _, name := range sl.ServiceNames() {
		if slices.Contains(services, name) {
			return true
		}
	}
	return false
}

func relevance(sl models.Salon, terms []string) int {
	doc := salon.Terms(strings.Join(append(
		[]string{sl.Name, sl.Description, sl.City},
		sl.ServiceNames()...,
	), " "))

	score := 0
	for _, t := range terms {
		for _, w := range doc {
			if w == t {
				score++
			}
		}
	}
	return score
}

func (s *Store) ListSalonsByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Salon, 0)
	for _, sl := range s.salons {
		if sl.OwnerID == ownerID {
			out = append(out, s.withOwner(sl))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.salonOrder[out[i].ID] > s.salonOrder[out[j].ID]
	})
	return out, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// populate must be called with s.mu held.
func (s *Store) populate(b models.Booking) models.Booking {
	b.Services = slices.Clone(b.Services)
	b.User, b.Salon = nil, nil

	if u, ok := s.users[b.UserID]; ok {
		b.User = &models.User{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role}
	}
	if sl, ok := s.salons[b.SalonID]; ok {
		c := cloneSalon(sl)
		b.Salon = &c
	}
	return b
}

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := s.now()
	b.CreatedAt, b.UpdatedAt = now, now

	stored := *b
	stored.User, stored.Salon = nil, nil
	stored.Services = slices.Clone(b.Services)
	s.bookings[b.ID] = stored
	return nil
}

func (s *Store) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, notFound("memory.GetBookingByID")
	}
	out := s.populate(b)
	return &out, nil
}

func (s *Store) UpdateBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return notFound("memory.UpdateBooking")
	}
	b.UpdatedAt = s.now()

	stored := *b
	stored.User, stored.Salon = nil, nil
	stored.Services = slices.Clone(b.Services)
	s.bookings[b.ID] = stored
	return nil
}

func (s *Store) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.listBookings(func(b models.Booking) bool { return b.UserID == userID }, true), nil
}

func (s *Store) ListBookingsBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	return s.listBookings(func(b models.Booking) bool { return b.SalonID == salonID }, false), nil
}

func (s *Store) listBookings(match func(models.Booking) bool, newestFirst bool) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if match(b) {
			out = append(out, s.populate(b))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ki := out[i].Date + " " + out[i].Time
		kj := out[j].Date + " " + out[j].Time
		if newestFirst {
			return ki > kj
		}
		return ki < kj
	})
	return out
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) InsertAuditLog(ctx context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAuditID++
	log.ID = s.nextAuditID
	if log.CreatedAt.IsZero() {
		log.CreatedAt = s.now()
	}
	s.auditLogs = append(s.auditLogs, *log)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		l := s.auditLogs[i]
		switch {
		case l.SalonID != q.SalonID:
		case q.Action != "" && l.Action != q.Action:
		case q.Entity != "" && l.Entity != q.Entity:
		case q.From != nil && l.CreatedAt.Before(*q.From):
		case q.To != nil && l.CreatedAt.After(*q.To):
		default:
			matched = append(matched, l)
		}
	}

	total := int64(len(matched))
	start := min(q.Offset(), len(matched))
	end := min(start+q.Limit, len(matched))
	return slices.Clone(matched[start:end]), total, nil
}
