// Package notifier decouples notification fan-out from instrument
// transitions. Engines record domain events to an outbox after the primary
// commit; a dispatcher job drains the outbox to the broker. A notifier
// outage therefore never blocks or rolls back a transition.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/pocketpay/instruments/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=recorder.go -destination=../mocks/recorder.go -package=mocks

type OutboxWriter interface {
	SaveEvent(ctx context.Context, e entity.OutboxEvent) error
}

// Recorder stages domain events. Failures are logged and swallowed: the
// instrument transition already committed and must stay reported as success.
type Recorder struct {
	outbox OutboxWriter
}

func NewRecorder(outbox OutboxWriter) *Recorder {
	return &Recorder{
		outbox: outbox,
	}
}

func (r *Recorder) RequestCreated(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User) {
	r.record(ctx, entity.EventRequestCreated, requestPayload(req, sender, recipient))
}

func (r *Recorder) RequestCancelled(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User) {
	r.record(ctx, entity.EventRequestCancelled, requestPayload(req, sender, recipient))
}

func (r *Recorder) RequestPaid(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User) {
	r.record(ctx, entity.EventRequestPaid, requestPayload(req, sender, recipient))
}

func (r *Recorder) VoucherCreated(ctx context.Context, v entity.Voucher, creator entity.User) {
	r.record(ctx, entity.EventVoucherCreated, voucherPayload(v, creator, entity.User{}))
}

func (r *Recorder) VoucherRedeemed(ctx context.Context, v entity.Voucher, creator, redeemer entity.User) {
	r.record(ctx, entity.EventVoucherRedeemed, voucherPayload(v, creator, redeemer))
}

func (r *Recorder) VoucherCancelled(ctx context.Context, v entity.Voucher, creator entity.User) {
	r.record(ctx, entity.EventVoucherCancelled, voucherPayload(v, creator, entity.User{}))
}

func (r *Recorder) record(ctx context.Context, eventType entity.EventType, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(ctx, "marshal event payload", "type", eventType, "error", err)
		return
	}

	e := entity.OutboxEvent{
		ID:        uuid.Must(uuid.NewV4()),
		Type:      eventType,
		Payload:   b,
		CreatedAt: time.Now(),
	}

	err = r.outbox.SaveEvent(ctx, e)
	if err != nil {
		slog.ErrorContext(ctx, "record event", "type", eventType, "error", err)
	}
}

func requestPayload(req entity.PaymentRequest, sender, recipient entity.User) entity.RequestEventPayload {
	return entity.RequestEventPayload{
		RequestID:      req.ID,
		SenderID:       req.SenderID,
		RecipientID:    req.RecipientID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Description:    req.Description,
		TransactionID:  req.TransactionID,
		SenderName:     sender.Username,
		RecipientName:  recipient.Username,
		SenderEmail:    sender.Email,
		RecipientEmail: recipient.Email,
	}
}

func voucherPayload(v entity.Voucher, creator, redeemer entity.User) entity.VoucherEventPayload {
	p := entity.VoucherEventPayload{
		VoucherID:    v.ID,
		Code:         v.Code,
		CreatorID:    v.CreatorID,
		Amount:       v.Amount,
		Currency:     v.Currency,
		CreatorName:  creator.Username,
		CreatorEmail: creator.Email,
	}

	if v.RedeemedBy != nil {
		p.RedeemerID = v.RedeemedBy
		p.RedeemerName = redeemer.Username
		p.RedeemerEmail = redeemer.Email
	}

	return p
}
