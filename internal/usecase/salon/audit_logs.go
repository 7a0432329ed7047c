package salon

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsInput struct {
	Action string
	Entity string
	From   string
	To     string
	Page   int
	Limit  int
}

type AuditLogsResult struct {
	Logs  []models.AuditLog
	Total int64
	Page  int
	Limit int
}

type ListSalonAuditLogs struct {
	salons salondomain.Repository
	logs   audit.Store
}

func NewListSalonAuditLogs(salons salondomain.Repository, logs audit.Store) *ListSalonAuditLogs {
	return &ListSalonAuditLogs{salons: salons, logs: logs}
}

func (uc *ListSalonAuditLogs) Execute(
	ctx context.Context,
	id session.Identity,
	salonID string,
	in AuditLogsInput,
) (*AuditLogsResult, error) {

	s, err := loadOwned(ctx, uc.salons, id, salonID, true)
	if err != nil {
		return nil, err
	}

	q := audit.Query{
		SalonID: s.ID,
		Action:  in.Action,
		Entity:  in.Entity,
		Page:    in.Page,
		Limit:   in.Limit,
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxAuditLimit {
		q.Limit = defaultAuditLimit
	}

	// Unparseable dates are ignored rather than rejected.
	if in.From != "" {
		if from, err := time.Parse(validators.DateLayout, in.From); err == nil {
			q.From = &from
		}
	}
	if in.To != "" {
		if to, err := time.Parse(validators.DateLayout, in.To); err == nil {
			end := to.Add(24 * time.Hour)
			q.To = &end
		}
	}

	logs, total, err := uc.logs.ListAuditLogs(ctx, q)
	if err != nil {
		return nil, err
	}

	return &AuditLogsResult{Logs: logs, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
