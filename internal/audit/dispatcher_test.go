package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type recordingStore struct {
	mu   sync.Mutex
	logs []models.AuditLog
	gate chan struct{}
}

func (s *recordingStore) InsertAuditLog(ctx context.Context, log *models.AuditLog) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, *log)
	return nil
}

func (s *recordingStore) ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (s *recordingStore) snapshot() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLog(nil), s.logs...)
}

func TestDispatcherPersistsEvents(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), logger.Discard())

	d.Dispatch(Event{
		SalonID:  "s-1",
		UserID:   "u-1",
		Action:   ActionBookingCreated,
		Entity:   "booking",
		EntityID: "b-1",
		Metadata: map[string]string{"date": "2026-11-03"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	logs := store.snapshot()
	require.Len(t, logs, 1)
	assert.Equal(t, "s-1", logs[0].SalonID)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, "u-1", *logs[0].UserID)
	require.NotNil(t, logs[0].EntityID)
	assert.Equal(t, "b-1", *logs[0].EntityID)
	assert.JSONEq(t, `{"date":"2026-11-03"}`, logs[0].Metadata)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	store := &recordingStore{gate: make(chan struct{})}
	d := NewDispatcher(New(store), logger.Discard())

	// One event may be held by the blocked worker, the rest fill the queue.
	for i := 0; i < queueSize+10; i++ {
		d.Dispatch(Event{SalonID: "s", Action: ActionSalonUpdated})
	}

	close(store.gate)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	got := len(store.snapshot())
	assert.LessOrEqual(t, got, queueSize+1)
	assert.GreaterOrEqual(t, got, queueSize)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: ActionSalonCreated})
	assert.NoError(t, d.Close(context.Background()))
}

func TestDispatchAfterCloseIsIgnored(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), logger.Discard())
	require.NoError(t, d.Close(context.Background()))

	d.Dispatch(Event{Action: ActionSalonCreated})
	assert.Empty(t, store.snapshot())
}
