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
	"github.com/shopspring/decimal"

	"github.com/pocketpay/instruments/internal/entity"
)

type VoucherRepository struct {
	db *pgxpool.Pool
}

func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{
		db: pool,
	}
}

func (r *VoucherRepository) CreateVoucher(ctx context.Context, v entity.Voucher) error {
	const q = `
	INSERT INTO vouchers (
		id,
		code,
		creator_id,
		amount,
		currency,
		status,
		pin_hash,
		expires_at,
		redeemed_at,
		redeemed_by,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		v.ID,
		v.Code,
		v.CreatorID,
		v.Amount,
		v.Currency,
		v.Status,
		zeronull.Text(v.PINHash),
		v.ExpiresAt,
		v.RedeemedAt,
		v.RedeemedBy,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// VoucherByCode expects the code already normalized to uppercase.
func (r *VoucherRepository) VoucherByCode(ctx context.Context, code string) (entity.Voucher, error) {
	q := selectVoucher + " WHERE code = $1"
	return scanVoucher(r.db.QueryRow(ctx, q, code))
}

func (r *VoucherRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM vouchers WHERE code = $1)`

	var exists bool

	err := r.db.QueryRow(ctx, q, code).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Vouchers lists vouchers where the user is creator or redeemer, newest first.
func (r *VoucherRepository) Vouchers(
	ctx context.Context,
	userID uuid.UUID,
	f entity.VoucherFilter,
) ([]entity.Voucher, error) {
	stmt := sq.Select(
		"id",
		"code",
		"creator_id",
		"amount",
		"currency",
		"status",
		"pin_hash",
		"expires_at",
		"redeemed_at",
		"redeemed_by",
		"created_at",
		"updated_at",
	).From("vouchers").
		Where(sq.Or{sq.Eq{"creator_id": userID}, sq.Eq{"redeemed_by": userID}}).
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

	vouchers := make([]entity.Voucher, 0, f.Limit)

	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}

		vouchers = append(vouchers, v)
	}

	return vouchers, rows.Err()
}

// MarkRedeemed is the active -> redeemed transition. The status guard makes
// it a compare-and-set: at most one redeemer wins, and a concurrent sweep
// cannot overwrite a redemption.
func (r *VoucherRepository) MarkRedeemed(ctx context.Context, code string, redeemerID uuid.UUID, redeemedAt time.Time) error {
	const q = `
	UPDATE vouchers
	SET status = $1, redeemed_at = $2, redeemed_by = $3, updated_at = $2
	WHERE code = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, q, entity.VoucherStatusRedeemed, redeemedAt, redeemerID, code, entity.VoucherStatusActive)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkCancelled is the creator's active -> cancelled transition.
func (r *VoucherRepository) MarkCancelled(ctx context.Context, code string, creatorID uuid.UUID, updatedAt time.Time) error {
	const q = `
	UPDATE vouchers
	SET status = $1, updated_at = $2
	WHERE code = $3 AND creator_id = $4 AND status = $5
	`

	result, err := r.db.Exec(ctx, q, entity.VoucherStatusCancelled, updatedAt, code, creatorID, entity.VoucherStatusActive)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkExpired finalizes a single overdue voucher, guarded on active.
func (r *VoucherRepository) MarkExpired(ctx context.Context, code string, updatedAt time.Time) error {
	const q = `
	UPDATE vouchers
	SET status = $1, updated_at = $2
	WHERE code = $3 AND status = $4
	`

	result, err := r.db.Exec(ctx, q, entity.VoucherStatusExpired, updatedAt, code, entity.VoucherStatusActive)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ExpireActive flips every overdue active voucher to expired in one
// statement and reports how many were processed.
func (r *VoucherRepository) ExpireActive(ctx context.Context, now time.Time) (int64, error) {
	const q = `
	UPDATE vouchers
	SET status = $1, updated_at = $2
	WHERE status = $3 AND expires_at < $2
	`

	result, err := r.db.Exec(ctx, q, entity.VoucherStatusExpired, now, entity.VoucherStatusActive)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

// Stats aggregates the creator's vouchers by status.
func (r *VoucherRepository) Stats(ctx context.Context, creatorID uuid.UUID) (entity.VoucherStats, error) {
	const q = `
	SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
	FROM vouchers
	WHERE creator_id = $1
	GROUP BY status
	`

	rows, err := r.db.Query(ctx, q, creatorID)
	if err != nil {
		return entity.VoucherStats{}, err
	}
	defer rows.Close()

	stats := entity.VoucherStats{
		TotalAmountCreated:  decimal.Zero,
		TotalAmountRedeemed: decimal.Zero,
		StatusBreakdown:     make(map[entity.VoucherStatus]int),
	}

	for rows.Next() {
		var (
			status entity.VoucherStatus
			count  int
			amount decimal.Decimal
		)

		err = rows.Scan(&status, &count, &amount)
		if err != nil {
			return entity.VoucherStats{}, err
		}

		stats.StatusBreakdown[status] = count
		stats.TotalCreated += count
		stats.TotalAmountCreated = stats.TotalAmountCreated.Add(amount)

		if status == entity.VoucherStatusRedeemed {
			stats.TotalRedeemed = count
			stats.TotalAmountRedeemed = amount
		}
	}

	return stats, rows.Err()
}

func scanVoucher(row pgx.Row) (v entity.Voucher, err error) {
	err = row.Scan(
		&v.ID,
		&v.Code,
		&v.CreatorID,
		&v.Amount,
		&v.Currency,
		&v.Status,
		(*zeronull.Text)(&v.PINHash),
		&v.ExpiresAt,
		&v.RedeemedAt,
		&v.RedeemedBy,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Voucher{}, entity.ErrNotFound
		}

		return entity.Voucher{}, fmt.Errorf("scan voucher: %w", err)
	}

	return v, nil
}
