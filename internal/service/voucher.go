package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/pocketpay/instruments/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=voucher.go -destination=../mocks/voucher.go -package=mocks

type VoucherRepository interface {
	CreateVoucher(ctx context.Context, v entity.Voucher) error
	VoucherByCode(ctx context.Context, code string) (entity.Voucher, error)
	Vouchers(ctx context.Context, userID uuid.UUID, f entity.VoucherFilter) ([]entity.Voucher, error)
	MarkRedeemed(ctx context.Context, code string, redeemerID uuid.UUID, redeemedAt time.Time) error
	MarkCancelled(ctx context.Context, code string, creatorID uuid.UUID, updatedAt time.Time) error
	MarkExpired(ctx context.Context, code string, updatedAt time.Time) error
	ExpireActive(ctx context.Context, now time.Time) (int64, error)
	Stats(ctx context.Context, creatorID uuid.UUID) (entity.VoucherStats, error)
}

type CodeIssuer interface {
	Generate(ctx context.Context) (string, error)
}

// VoucherService is the bearer voucher state machine. Anyone holding the
// code may redeem, except the creator; a PIN gates redemption when set.
type VoucherService struct {
	repo    VoucherRepository
	users   UserDirectory
	events  EventRecorder
	codes   CodeIssuer
	secrets SecretVerifier
}

func NewVoucherService(
	repo VoucherRepository,
	users UserDirectory,
	events EventRecorder,
	codes CodeIssuer,
	secrets SecretVerifier,
) *VoucherService {
	return &VoucherService{
		repo:    repo,
		users:   users,
		events:  events,
		codes:   codes,
		secrets: secrets,
	}
}

// CreateVoucher funds a new active voucher. The pin is optional; only its
// digest is persisted.
func (s *VoucherService) CreateVoucher(
	ctx context.Context,
	creatorID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	pin string,
	expiresInHours int,
) (entity.Voucher, error) {
	if !amount.IsPositive() {
		return entity.Voucher{}, fmt.Errorf("%w: amount must be positive", entity.ErrInvalidArgument)
	}

	if currency == "" {
		return entity.Voucher{}, fmt.Errorf("%w: currency is required", entity.ErrInvalidArgument)
	}

	if expiresInHours <= 0 {
		return entity.Voucher{}, fmt.Errorf("%w: expiry must be at least one hour", entity.ErrInvalidArgument)
	}

	creator, err := s.users.User(ctx, creatorID)
	if err != nil {
		return entity.Voucher{}, fmt.Errorf("get creator %s: %w", creatorID, err)
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return entity.Voucher{}, fmt.Errorf("generate voucher code: %w", err)
	}

	var pinHash string
	if pin != "" {
		pinHash = s.secrets.Hash(pin)
	}

	now := time.Now()

	v := entity.Voucher{
		ID:        uuid.Must(uuid.NewV4()),
		Code:      code,
		CreatorID: creatorID,
		Amount:    amount,
		Currency:  currency,
		Status:    entity.VoucherStatusActive,
		PINHash:   pinHash,
		ExpiresAt: now.Add(time.Duration(expiresInHours) * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.CreateVoucher(ctx, v)
	if err != nil {
		return entity.Voucher{}, fmt.Errorf("create voucher: %w", err)
	}

	s.events.VoucherCreated(ctx, v, creator)

	slog.InfoContext(ctx, "voucher created",
		"voucher_id", v.ID, "creator_id", creatorID, "amount", amount, "has_pin", v.HasPIN())

	return v, nil
}

// Voucher looks a voucher up by its bearer code, case-insensitively. No
// ownership check: holding the code is the authorization.
func (s *VoucherService) Voucher(ctx context.Context, code string) (entity.Voucher, error) {
	v, err := s.repo.VoucherByCode(ctx, normalizeCode(code))
	if err != nil {
		return entity.Voucher{}, fmt.Errorf("get voucher: %w", err)
	}

	return v, nil
}

// Vouchers lists vouchers the user created or redeemed, newest first.
func (s *VoucherService) Vouchers(ctx context.Context, userID uuid.UUID, f entity.VoucherFilter) ([]entity.Voucher, error) {
	f.Limit = clampLimit(f.Limit)

	vouchers, err := s.repo.Vouchers(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}

	return vouchers, nil
}

// Redeem settles an active voucher for the redeemer. An overdue voucher is
// finalized to expired and reported as such, never redeemed.
func (s *VoucherService) Redeem(ctx context.Context, code string, redeemerID uuid.UUID, pin string) (entity.Voucher, error) {
	code = normalizeCode(code)

	v, err := s.repo.VoucherByCode(ctx, code)
	if err != nil {
		return entity.Voucher{}, fmt.Errorf("get voucher: %w", err)
	}

	if v.Status != entity.VoucherStatusActive {
		return entity.Voucher{}, fmt.Errorf("%w: voucher is %s", entity.ErrInvalidOperation, v.Status)
	}

	now := time.Now()

	if v.Expired(now) {
		err = s.repo.MarkExpired(ctx, code, now)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return entity.Voucher{}, fmt.Errorf("expire voucher: %w", err)
		}

		return entity.Voucher{}, fmt.Errorf("voucher: %w", entity.ErrExpired)
	}

	if v.CreatorID == redeemerID {
		return entity.Voucher{}, fmt.Errorf("%w: cannot redeem your own voucher", entity.ErrInvalidOperation)
	}

	if v.HasPIN() {
		if pin == "" {
			return entity.Voucher{}, fmt.Errorf("%w: PIN required", entity.ErrInvalidSecret)
		}

		if !s.secrets.Verify(pin, v.PINHash) {
			return entity.Voucher{}, entity.ErrInvalidSecret
		}
	}

	err = s.repo.MarkRedeemed(ctx, code, redeemerID, now)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Lost the race: report whatever state won.
			current, getErr := s.repo.VoucherByCode(ctx, code)
			if getErr != nil {
				return entity.Voucher{}, fmt.Errorf("%w: voucher is no longer active", entity.ErrInvalidOperation)
			}

			return entity.Voucher{}, fmt.Errorf("%w: voucher is %s", entity.ErrInvalidOperation, current.Status)
		}

		return entity.Voucher{}, fmt.Errorf("mark voucher redeemed: %w", err)
	}

	v.Status = entity.VoucherStatusRedeemed
	v.RedeemedAt = &now
	v.RedeemedBy = &redeemerID
	v.UpdatedAt = now

	creator, redeemer := s.voucherParties(ctx, v.CreatorID, redeemerID)
	s.events.VoucherRedeemed(ctx, v, creator, redeemer)

	slog.InfoContext(ctx, "voucher redeemed",
		"voucher_id", v.ID, "creator_id", v.CreatorID, "redeemer_id", redeemerID, "amount", v.Amount)

	return v, nil
}

// Cancel is the creator's active -> cancelled transition. False when the
// caller is not the creator or the voucher is no longer active.
func (s *VoucherService) Cancel(ctx context.Context, code string, userID uuid.UUID) (bool, error) {
	code = normalizeCode(code)

	err := s.repo.MarkCancelled(ctx, code, userID, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("cancel voucher: %w", err)
	}

	v, err := s.repo.VoucherByCode(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "load cancelled voucher for notification", "error", err)
		return true, nil
	}

	creator, _ := s.voucherParties(ctx, v.CreatorID, uuid.Nil)
	s.events.VoucherCancelled(ctx, v, creator)

	slog.InfoContext(ctx, "voucher cancelled", "voucher_id", v.ID, "creator_id", userID)

	return true, nil
}

// CleanupExpired finalizes every overdue active voucher and returns the
// number processed. Safe to run concurrently with redemptions and cancels.
func (s *VoucherService) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.ExpireActive(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire active vouchers: %w", err)
	}

	if count > 0 {
		slog.InfoContext(ctx, "expired vouchers", "count", count)
	}

	return count, nil
}

// Stats aggregates the user's created vouchers.
func (s *VoucherService) Stats(ctx context.Context, userID uuid.UUID) (entity.VoucherStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return entity.VoucherStats{}, fmt.Errorf("voucher stats: %w", err)
	}

	return stats, nil
}

// FormatResponse renders the caller-facing view. The countdown only renders
// while the voucher is still active.
func (s *VoucherService) FormatResponse(v entity.Voucher) entity.VoucherView {
	view := entity.VoucherView{
		ID:         v.ID,
		Code:       v.Code,
		Amount:     v.Amount,
		Currency:   v.Currency,
		Status:     v.Status,
		HasPIN:     v.HasPIN(),
		ExpiresAt:  v.ExpiresAt,
		RedeemedAt: v.RedeemedAt,
		RedeemedBy: v.RedeemedBy,
		CreatedAt:  v.CreatedAt,
	}

	if v.Status == entity.VoucherStatusActive {
		view.TimeRemaining = v.TimeRemaining(time.Now())
	}

	return view
}

func (s *VoucherService) voucherParties(ctx context.Context, creatorID, redeemerID uuid.UUID) (creator, redeemer entity.User) {
	creator, err := s.users.User(ctx, creatorID)
	if err != nil {
		slog.WarnContext(ctx, "resolve creator for notification", "user_id", creatorID, "error", err)
		creator = entity.User{ID: creatorID}
	}

	if redeemerID == uuid.Nil {
		return creator, entity.User{}
	}

	redeemer, err = s.users.User(ctx, redeemerID)
	if err != nil {
		slog.WarnContext(ctx, "resolve redeemer for notification", "user_id", redeemerID, "error", err)
		redeemer = entity.User{ID: redeemerID}
	}

	return creator, redeemer
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
