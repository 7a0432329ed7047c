package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	ActionSalonCreated     = "salon_created"
	ActionSalonUpdated     = "salon_updated"
	ActionSalonDeleted     = "salon_deleted"
	ActionSalonReactivated = "salon_reactivated"
	ActionSalonImageAdded  = "salon_image_added"

	ActionBookingCreated   = "booking_created"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingCompleted = "booking_completed"
	ActionBookingCancelled = "booking_cancelled"
)

// Query selects a salon's audit entries, newest first.
type Query struct {
	SalonID string
	Action  string
	Entity  string
	From    *time.Time
	To      *time.Time

	Page  int
	Limit int
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Store interface {
	InsertAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		SalonID:  ev.SalonID,
		UserID:   optional(ev.UserID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	}

	return l.store.InsertAuditLog(ctx, &entry)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
