package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketpay/instruments/internal/entity"
)

// OutboxRepository stages domain events for asynchronous delivery.
type OutboxRepository struct {
	db *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{
		db: pool,
	}
}

func (r *OutboxRepository) SaveEvent(ctx context.Context, e entity.OutboxEvent) error {
	const q = `
	INSERT INTO outbox_events (id, type, payload, created_at, published_at)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, q, e.ID, e.Type, e.Payload, e.CreatedAt, e.PublishedAt)
	if err != nil {
		return err
	}

	return nil
}

// UnpublishedEvents returns the oldest undelivered events.
func (r *OutboxRepository) UnpublishedEvents(ctx context.Context, limit int) ([]entity.OutboxEvent, error) {
	const q = `
	SELECT id, type, payload, created_at, published_at
	FROM outbox_events
	WHERE published_at IS NULL
	ORDER BY created_at
	LIMIT $1
	`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entity.OutboxEvent

	for rows.Next() {
		var e entity.OutboxEvent

		err = rows.Scan(&e.ID, &e.Type, &e.Payload, &e.CreatedAt, &e.PublishedAt)
		if err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	const q = `UPDATE outbox_events SET published_at = $1 WHERE id = $2 AND published_at IS NULL`

	result, err := r.db.Exec(ctx, q, publishedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeletePublished prunes events delivered before the cutoff.
func (r *OutboxRepository) DeletePublished(ctx context.Context, olderThan time.Time) (int64, error) {
	const q = `DELETE FROM outbox_events WHERE published_at IS NOT NULL AND published_at < $1`

	result, err := r.db.Exec(ctx, q, olderThan)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
