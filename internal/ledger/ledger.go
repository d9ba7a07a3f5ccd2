// Package ledger implements the household operations on top of a storage.Store:
// household debt, settlements, transaction postings and spend refreshes.
//
// Every mutating operation validates and reads first, then submits all of
// its writes as one storage.Batch. Events are published only after the
// batch has committed.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/paycycle/internal/events"
	"github.com/mmynk/paycycle/internal/metrics"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// Ledger coordinates the calculators with the store.
type Ledger struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPublisher sets the event publisher. Defaults to events.Nop.
func WithPublisher(p events.Publisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

// WithMetrics sets the metrics sink. Defaults to none.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// WithClock overrides the clock used to derive "today".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a Ledger backed by store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:     store,
		publisher: events.Nop{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// apply submits the batch and maps any store failure to ErrOperationFailed.
// The underlying cause stays reachable through errors.Is.
func (l *Ledger) apply(ctx context.Context, operation string, batch *storage.Batch) error {
	if err := l.store.Apply(ctx, batch); err != nil {
		l.metrics.BatchFailed(operation)
		slog.Error("Batch rejected", "operation", operation, "ops", batch.Len(), "error", err)
		return fmt.Errorf("%s: %w: %w", operation, models.ErrOperationFailed, err)
	}
	return nil
}

// publish sends an event for a committed batch. A publish failure does not
// undo the commit, so it is logged and counted instead of returned.
func (l *Ledger) publish(ctx context.Context, eventType string, payload any) {
	event, err := events.New(eventType, payload)
	if err == nil {
		err = l.publisher.Publish(ctx, event)
	}
	l.metrics.EventPublished(eventType, err)
	if err != nil {
		slog.Warn("Failed to publish event", "type", eventType, "error", err)
	}
}

// member loads a member, failing with ErrNotFound when it is missing.
func (l *Ledger) member(ctx context.Context, memberID string) (*models.Member, error) {
	if memberID == "" {
		return nil, models.Validationf("member ID is required")
	}
	return l.store.GetMember(ctx, memberID)
}

func values[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

// Today returns the current date at UTC midnight, per the ledger's clock.
func (l *Ledger) Today() time.Time {
	return models.Day(l.now())
}
