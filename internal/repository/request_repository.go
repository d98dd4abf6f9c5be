package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketpay/instruments/internal/entity"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{
		db: pool,
	}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req entity.PaymentRequest) error {
	const q = `
	INSERT INTO payment_requests (
		id,
		sender_id,
		recipient_id,
		amount,
		currency,
		description,
		status,
		expires_at,
		paid_at,
		transaction_id,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		req.ID,
		req.SenderID,
		req.RecipientID,
		req.Amount,
		req.Currency,
		req.Description,
		req.Status,
		req.ExpiresAt,
		req.PaidAt,
		zeronull.Text(req.TransactionID),
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *RequestRepository) Request(ctx context.Context, id uuid.UUID) (entity.PaymentRequest, error) {
	q := selectRequest + " WHERE id = $1"
	return scanRequest(r.db.QueryRow(ctx, q, id))
}

// Requests lists requests where the user is either party, newest first.
func (r *RequestRepository) Requests(
	ctx context.Context,
	userID uuid.UUID,
	f entity.RequestFilter,
) ([]entity.PaymentRequest, error) {
	stmt := sq.Select(
		"id",
		"sender_id",
		"recipient_id",
		"amount",
		"currency",
		"description",
		"status",
		"expires_at",
		"paid_at",
		"transaction_id",
		"created_at",
		"updated_at",
	).From("payment_requests").
		Where(sq.Or{sq.Eq{"sender_id": userID}, sq.Eq{"recipient_id": userID}}).
		PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	stmt = stmt.OrderBy("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.PaymentRequest, 0, f.Limit)

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}

		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// RecentDescriptions returns descriptions of the user's latest requests,
// feeding the template suggestions.
func (r *RequestRepository) RecentDescriptions(ctx context.Context, userID uuid.UUID, limit uint64) ([]string, error) {
	const q = `
	SELECT description
	FROM payment_requests
	WHERE (sender_id = $1 OR recipient_id = $1) AND description <> ''
	ORDER BY created_at DESC
	LIMIT $2
	`

	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var descriptions []string

	for rows.Next() {
		var d string

		err = rows.Scan(&d)
		if err != nil {
			return nil, err
		}

		descriptions = append(descriptions, d)
	}

	return descriptions, rows.Err()
}

// UpdatePending mutates sender-editable fields, guarded on the caller being
// the sender and the request still pending. ErrNotFound when the guard fails.
func (r *RequestRepository) UpdatePending(
	ctx context.Context,
	id uuid.UUID,
	senderID uuid.UUID,
	upd entity.RequestUpdate,
	updatedAt time.Time,
) (entity.PaymentRequest, error) {
	stmt := sq.Update("payment_requests").
		Set("updated_at", updatedAt).
		Where(sq.Eq{
			"id":        id,
			"sender_id": senderID,
			"status":    entity.RequestStatusPending,
		}).
		PlaceholderFormat(sq.Dollar)

	if upd.Amount != nil {
		stmt = stmt.Set("amount", *upd.Amount)
	}

	if upd.Currency != nil {
		stmt = stmt.Set("currency", *upd.Currency)
	}

	if upd.Description != nil {
		stmt = stmt.Set("description", *upd.Description)
	}

	if upd.ExpiresAt != nil {
		stmt = stmt.Set("expires_at", *upd.ExpiresAt)
	}

	stmt = stmt.Suffix(`RETURNING
		id, sender_id, recipient_id, amount, currency, description,
		status, expires_at, paid_at, transaction_id, created_at, updated_at`)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.PaymentRequest{}, err
	}

	return scanRequest(r.db.QueryRow(ctx, sql, args...))
}

// MarkCancelled is the sender's pending -> cancelled transition.
func (r *RequestRepository) MarkCancelled(ctx context.Context, id, senderID uuid.UUID, updatedAt time.Time) error {
	const q = `
	UPDATE payment_requests
	SET status = $1, updated_at = $2
	WHERE id = $3 AND sender_id = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, q, entity.RequestStatusCancelled, updatedAt, id, senderID, entity.RequestStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkPaid is the pending -> paid transition. The status guard makes it a
// compare-and-set: at most one concurrent payer, canceller or sweep wins.
func (r *RequestRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, transactionID string) error {
	const q = `
	UPDATE payment_requests
	SET status = $1, paid_at = $2, transaction_id = $3, updated_at = $2
	WHERE id = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, q, entity.RequestStatusPaid, paidAt, transactionID, id, entity.RequestStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkExpired finalizes a single overdue request, guarded on pending.
func (r *RequestRepository) MarkExpired(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	const q = `
	UPDATE payment_requests
	SET status = $1, updated_at = $2
	WHERE id = $3 AND status = $4
	`

	result, err := r.db.Exec(ctx, q, entity.RequestStatusExpired, updatedAt, id, entity.RequestStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ExpirePending flips every overdue pending request to expired in one
// statement and reports how many were processed.
func (r *RequestRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	const q = `
	UPDATE payment_requests
	SET status = $1, updated_at = $2
	WHERE status = $3 AND expires_at < $2
	`

	result, err := r.db.Exec(ctx, q, entity.RequestStatusExpired, now, entity.RequestStatusPending)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanRequest(row pgx.Row) (req entity.PaymentRequest, err error) {
	err = row.Scan(
		&req.ID,
		&req.SenderID,
		&req.RecipientID,
		&req.Amount,
		&req.Currency,
		&req.Description,
		&req.Status,
		&req.ExpiresAt,
		&req.PaidAt,
		(*zeronull.Text)(&req.TransactionID),
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PaymentRequest{}, entity.ErrNotFound
		}

		return entity.PaymentRequest{}, fmt.Errorf("scan payment request: %w", err)
	}

	return req, nil
}
