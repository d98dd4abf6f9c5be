package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventRequestCreated   EventType = "request_created"
	EventRequestCancelled EventType = "request_cancelled"
	EventRequestPaid      EventType = "request_paid"
	EventVoucherCreated   EventType = "voucher_created"
	EventVoucherRedeemed  EventType = "voucher_redeemed"
	EventVoucherCancelled EventType = "voucher_cancelled"
)

func (t EventType) String() string {
	return string(t)
}

// OutboxEvent is a domain event staged for asynchronous delivery. Events are
// written after the instrument transition commits and drained by the
// dispatcher job, so a notifier outage never rolls back a transition.
type OutboxEvent struct {
	ID          uuid.UUID
	Type        EventType
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

type RequestEventPayload struct {
	RequestID      uuid.UUID       `json:"request_id"`
	SenderID       uuid.UUID       `json:"sender_id"`
	RecipientID    uuid.UUID       `json:"recipient_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description,omitempty"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	SenderName     string          `json:"sender_name,omitempty"`
	RecipientName  string          `json:"recipient_name,omitempty"`
	SenderEmail    string          `json:"sender_email,omitempty"`
	RecipientEmail string          `json:"recipient_email,omitempty"`
}

type VoucherEventPayload struct {
	VoucherID     uuid.UUID       `json:"voucher_id"`
	Code          string          `json:"voucher_code"`
	CreatorID     uuid.UUID       `json:"creator_id"`
	RedeemerID    *uuid.UUID      `json:"redeemer_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatorName   string          `json:"creator_name,omitempty"`
	RedeemerName  string          `json:"redeemer_name,omitempty"`
	CreatorEmail  string          `json:"creator_email,omitempty"`
	RedeemerEmail string          `json:"redeemer_email,omitempty"`
}
