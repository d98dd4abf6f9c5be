package notifier

import (
	"encoding/json"
	"fmt"

	"github.com/pocketpay/instruments/internal/entity"
)

// Message is the wire shape the notification service consumes. Type
// "notification" creates an in-app notification for UserID; type "email"
// sends to Recipients.
type Message struct {
	Type       string         `json:"type"`
	UserID     string         `json:"user_id,omitempty"`
	Title      string         `json:"title,omitempty"`
	Subject    string         `json:"subject,omitempty"`
	Message    string         `json:"message"`
	Kind       string         `json:"kind,omitempty"`
	Recipients []string       `json:"recipients,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

// messagesFor renders the notification and email fan-out for one domain
// event.
func messagesFor(e entity.OutboxEvent) ([]Message, error) {
	switch e.Type {
	case entity.EventRequestCreated, entity.EventRequestCancelled, entity.EventRequestPaid:
		var p entity.RequestEventPayload

		err := json.Unmarshal(e.Payload, &p)
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", e.Type, err)
		}

		return requestMessages(e.Type, p)

	case entity.EventVoucherCreated, entity.EventVoucherRedeemed, entity.EventVoucherCancelled:
		var p entity.VoucherEventPayload

		err := json.Unmarshal(e.Payload, &p)
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", e.Type, err)
		}

		return voucherMessages(e.Type, p)

	default:
		return nil, fmt.Errorf("%w: unknown event type %s", entity.ErrInvalidArgument, e.Type)
	}
}

func requestMessages(t entity.EventType, p entity.RequestEventPayload) ([]Message, error) {
	amount := fmt.Sprintf("%s %s", p.Amount, p.Currency)
	data := map[string]any{
		"request_id": p.RequestID,
		"amount":     p.Amount,
		"currency":   p.Currency,
	}

	switch t {
	case entity.EventRequestCreated:
		msgs := []Message{{
			Type:    "notification",
			UserID:  p.RecipientID.String(),
			Title:   "New payment request",
			Message: fmt.Sprintf("%s requested %s from you", p.SenderName, amount),
			Kind:    t.String(),
			Data:    data,
		}}

		if p.RecipientEmail != "" {
			msgs = append(msgs, Message{
				Type:       "email",
				Subject:    "You received a payment request",
				Message:    fmt.Sprintf("%s requested %s from you: %s", p.SenderName, amount, p.Description),
				Recipients: []string{p.RecipientEmail},
			})
		}

		return msgs, nil

	case entity.EventRequestCancelled:
		return []Message{{
			Type:    "notification",
			UserID:  p.RecipientID.String(),
			Title:   "Payment request cancelled",
			Message: fmt.Sprintf("%s cancelled their request for %s", p.SenderName, amount),
			Kind:    t.String(),
			Data:    data,
		}}, nil

	case entity.EventRequestPaid:
		msgs := []Message{{
			Type:    "notification",
			UserID:  p.SenderID.String(),
			Title:   "Payment request paid",
			Message: fmt.Sprintf("%s paid your request for %s", p.RecipientName, amount),
			Kind:    t.String(),
			Data:    data,
		}}

		if p.SenderEmail != "" {
			msgs = append(msgs, Message{
				Type:       "email",
				Subject:    "Your payment request was paid",
				Message:    fmt.Sprintf("%s paid %s (transaction %s)", p.RecipientName, amount, p.TransactionID),
				Recipients: []string{p.SenderEmail},
			})
		}

		return msgs, nil

	default:
		return nil, fmt.Errorf("%w: %s is not a request event", entity.ErrInvalidArgument, t)
	}
}

func voucherMessages(t entity.EventType, p entity.VoucherEventPayload) ([]Message, error) {
	amount := fmt.Sprintf("%s %s", p.Amount, p.Currency)
	data := map[string]any{
		"voucher_id": p.VoucherID,
		"amount":     p.Amount,
		"currency":   p.Currency,
	}

	switch t {
	case entity.EventVoucherCreated:
		msgs := []Message{{
			Type:    "notification",
			UserID:  p.CreatorID.String(),
			Title:   "Voucher created",
			Message: fmt.Sprintf("Your voucher for %s is active", amount),
			Kind:    t.String(),
			Data:    data,
		}}

		if p.CreatorEmail != "" {
			msgs = append(msgs, Message{
				Type:       "email",
				Subject:    "Your voucher is ready",
				Message:    fmt.Sprintf("Voucher %s for %s is active and ready to share", p.Code, amount),
				Recipients: []string{p.CreatorEmail},
			})
		}

		return msgs, nil

	case entity.EventVoucherRedeemed:
		msgs := []Message{
			{
				Type:    "notification",
				UserID:  p.CreatorID.String(),
				Title:   "Voucher redeemed",
				Message: fmt.Sprintf("%s redeemed your voucher for %s", p.RedeemerName, amount),
				Kind:    t.String(),
				Data:    data,
			},
		}

		if p.RedeemerID != nil {
			msgs = append(msgs, Message{
				Type:    "notification",
				UserID:  p.RedeemerID.String(),
				Title:   "Voucher redeemed",
				Message: fmt.Sprintf("You redeemed a voucher for %s", amount),
				Kind:    t.String(),
				Data:    data,
			})
		}

		if p.CreatorEmail != "" {
			msgs = append(msgs, Message{
				Type:       "email",
				Subject:    "Your voucher was redeemed",
				Message:    fmt.Sprintf("%s redeemed voucher %s for %s", p.RedeemerName, p.Code, amount),
				Recipients: []string{p.CreatorEmail},
			})
		}

		if p.RedeemerEmail != "" {
			msgs = append(msgs, Message{
				Type:       "email",
				Subject:    "Voucher redeemed",
				Message:    fmt.Sprintf("You redeemed voucher %s for %s", p.Code, amount),
				Recipients: []string{p.RedeemerEmail},
			})
		}

		return msgs, nil

	case entity.EventVoucherCancelled:
		return []Message{{
			Type:    "notification",
			UserID:  p.CreatorID.String(),
			Title:   "Voucher cancelled",
			Message: fmt.Sprintf("Your voucher for %s was cancelled", amount),
			Kind:    t.String(),
			Data:    data,
		}}, nil

	default:
		return nil, fmt.Errorf("%w: %s is not a voucher event", entity.ErrInvalidArgument, t)
	}
}
