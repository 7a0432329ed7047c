package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) InsertAuditLog(ctx context.Context, log *models.AuditLog) error {
	return wrap("repository.InsertAuditLog", r.db.WithContext(ctx).Create(log).Error)
}

func (r *AuditGormRepository) ListAuditLogs(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	const op = "repository.ListAuditLogs"

	// --------------------------------------------------
	// Query base (always scoped to the salon)
	// --------------------------------------------------
	tx := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("salon_id = ?", q.SalonID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at <= ?", *q.To)
	}

	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, wrap(op, err)
	}

	logs := make([]models.AuditLog, 0)
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, wrap(op, err)
	}

	return logs, total, nil
}

var _ audit.Store = (*AuditGormRepository)(nil)
