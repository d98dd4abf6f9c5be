package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/pocketpay/instruments/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks

type OutboxReader interface {
	UnpublishedEvents(ctx context.Context, limit int) ([]entity.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
	DeletePublished(ctx context.Context, olderThan time.Time) (int64, error)
}

type Producer interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Dispatcher drains the outbox to the broker. An event is marked published
// only after the broker accepted every message rendered from it, so a
// failed delivery is retried on the next run.
type Dispatcher struct {
	outbox     OutboxReader
	producer   Producer
	batchSize  int
	pruneAfter time.Duration
}

func NewDispatcher(outbox OutboxReader, producer Producer, batchSize int, pruneAfter time.Duration) *Dispatcher {
	return &Dispatcher{
		outbox:     outbox,
		producer:   producer,
		batchSize:  batchSize,
		pruneAfter: pruneAfter,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context) error {
	events, err := d.outbox.UnpublishedEvents(ctx, d.batchSize)
	if err != nil {
		return fmt.Errorf("load unpublished events: %w", err)
	}

	var errs []error

	for _, e := range events {
		err = d.dispatchEvent(ctx, e)
		if err != nil {
			errs = append(errs, fmt.Errorf("dispatch event %s: %w", e.ID, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (d *Dispatcher) dispatchEvent(ctx context.Context, e entity.OutboxEvent) error {
	msgs, err := messagesFor(e)
	if err != nil {
		// Malformed events would be retried forever; drop them from the
		// queue and leave a trace instead.
		slog.ErrorContext(ctx, "skip undeliverable event", "event_id", e.ID, "type", e.Type, "error", err)
		return d.outbox.MarkPublished(ctx, e.ID, time.Now())
	}

	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal message: %w", err)
		}

		err = d.producer.Publish(ctx, e.ID.String(), b)
		if err != nil {
			return fmt.Errorf("publish message: %w", err)
		}
	}

	err = d.outbox.MarkPublished(ctx, e.ID, time.Now())
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}

	return nil
}

// PrunePublished deletes events delivered longer ago than the retention
// window.
func (d *Dispatcher) PrunePublished(ctx context.Context) error {
	count, err := d.outbox.DeletePublished(ctx, time.Now().Add(-d.pruneAfter))
	if err != nil {
		return fmt.Errorf("delete published events: %w", err)
	}

	if count > 0 {
		slog.InfoContext(ctx, "pruned outbox events", "count", count)
	}

	return nil
}
