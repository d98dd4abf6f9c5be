package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type VoucherStatus string

const (
	VoucherStatusActive    VoucherStatus = "active"
	VoucherStatusRedeemed  VoucherStatus = "redeemed"
	VoucherStatusCancelled VoucherStatus = "cancelled"
	VoucherStatusExpired   VoucherStatus = "expired"
)

func (s VoucherStatus) String() string {
	return string(s)
}

func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherStatusActive, VoucherStatusRedeemed, VoucherStatusCancelled, VoucherStatusExpired:
		return true
	}

	return false
}

// Terminal reports whether the status can never change again.
func (s VoucherStatus) Terminal() bool {
	return s != VoucherStatusActive
}

// CanTransition is the exhaustive transition table for vouchers.
func (s VoucherStatus) CanTransition(to VoucherStatus) bool {
	if s != VoucherStatusActive {
		return false
	}

	switch to {
	case VoucherStatusRedeemed, VoucherStatusCancelled, VoucherStatusExpired:
		return true
	}

	return false
}

// Voucher is a bearer instrument: the code alone authorizes redemption,
// optionally gated by a PIN. Only the creator may not redeem it.
type Voucher struct {
	ID         uuid.UUID
	Code       string
	CreatorID  uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	Status     VoucherStatus
	PINHash    string // hex-encoded one-way digest, empty when no PIN is set
	ExpiresAt  time.Time
	RedeemedAt *time.Time
	RedeemedBy *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (v Voucher) HasPIN() bool {
	return v.PINHash != ""
}

func (v Voucher) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// TimeRemaining renders the time left until expiry. Only meaningful while
// the voucher is active.
func (v Voucher) TimeRemaining(now time.Time) string {
	left := v.ExpiresAt.Sub(now)
	if left <= 0 {
		return "Expired"
	}

	hours := int(left.Hours())
	minutes := int(left.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return fmt.Sprintf("%dm", minutes)
}

type VoucherFilter struct {
	Status *VoucherStatus
	Limit  uint64
	Offset uint64
}

// VoucherView is the caller-facing shape of a voucher. The PIN digest never
// leaves the service.
type VoucherView struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"voucher_code"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        VoucherStatus   `json:"status"`
	HasPIN        bool            `json:"has_pin"`
	TimeRemaining string          `json:"time_remaining,omitempty"`
	ExpiresAt     time.Time       `json:"expires_at"`
	RedeemedAt    *time.Time      `json:"redeemed_at,omitempty"`
	RedeemedBy    *uuid.UUID      `json:"redeemed_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// VoucherStats aggregates a creator's vouchers.
type VoucherStats struct {
	TotalCreated        int
	TotalRedeemed       int
	TotalAmountCreated  decimal.Decimal
	TotalAmountRedeemed decimal.Decimal
	StatusBreakdown     map[VoucherStatus]int
}

// SuccessRate is the share of created vouchers that were redeemed, in
// percent. Zero when nothing was created.
func (s VoucherStats) SuccessRate() float64 {
	if s.TotalCreated == 0 {
		return 0
	}

	return float64(s.TotalRedeemed) / float64(s.TotalCreated) * 100
}
