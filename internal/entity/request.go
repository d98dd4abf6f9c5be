package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusPaid      RequestStatus = "paid"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusExpired   RequestStatus = "expired"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusPaid, RequestStatusCancelled, RequestStatusExpired:
		return true
	}

	return false
}

// Terminal reports whether the status can never change again.
func (s RequestStatus) Terminal() bool {
	return s != RequestStatusPending
}

// CanTransition is the exhaustive transition table for payment requests.
// The only legal moves are out of pending; terminal states admit nothing.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}

	switch to {
	case RequestStatusPaid, RequestStatusCancelled, RequestStatusExpired:
		return true
	}

	return false
}

// PaymentRequest is a pull payment: the sender asks the recipient to pay.
// The recipient is the debtor; their balance moves on Pay.
type PaymentRequest struct {
	ID            uuid.UUID
	SenderID      uuid.UUID
	RecipientID   uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Description   string
	Status        RequestStatus
	ExpiresAt     time.Time
	PaidAt        *time.Time
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r PaymentRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// VisibleTo reports whether the user is a party to the request.
func (r PaymentRequest) VisibleTo(userID uuid.UUID) bool {
	return r.SenderID == userID || r.RecipientID == userID
}

// RequestUpdate carries the sender-editable fields. Nil means keep as is.
type RequestUpdate struct {
	Amount      *decimal.Decimal
	Currency    *string
	Description *string
	ExpiresAt   *time.Time
}

func (u RequestUpdate) Empty() bool {
	return u.Amount == nil && u.Currency == nil && u.Description == nil && u.ExpiresAt == nil
}

type RequestFilter struct {
	Status *RequestStatus
	Limit  uint64
	Offset uint64
}

// RequestTemplate is a prefill suggestion for new requests.
type RequestTemplate struct {
	Name        string
	Amount      decimal.Decimal
	Description string
}
