package notifier

import (
	"encoding/json"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pocketpay/instruments/internal/entity"
)

func mustEvent(t *testing.T, eventType entity.EventType, payload any) entity.OutboxEvent {
	t.Helper()

	b, err := json.Marshal(payload)
	require.NoError(t, err)

	return entity.OutboxEvent{
		ID:      uuid.Must(uuid.NewV4()),
		Type:    eventType,
		Payload: b,
	}
}

func TestMessagesFor_RequestCreated(t *testing.T) {
	t.Parallel()

	p := entity.RequestEventPayload{
		RequestID:      uuid.Must(uuid.NewV4()),
		SenderID:       uuid.Must(uuid.NewV4()),
		RecipientID:    uuid.Must(uuid.NewV4()),
		Amount:         decimal.New(25, 0),
		Currency:       "USD",
		Description:    "Dinner",
		SenderName:     "alice",
		RecipientEmail: "bob@example.com",
	}

	msgs, err := messagesFor(mustEvent(t, entity.EventRequestCreated, p))
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.Equal(t, "notification", msgs[0].Type)
	require.Equal(t, p.RecipientID.String(), msgs[0].UserID)
	require.Contains(t, msgs[0].Message, "alice")
	require.Contains(t, msgs[0].Message, "25 USD")

	require.Equal(t, "email", msgs[1].Type)
	require.Equal(t, []string{"bob@example.com"}, msgs[1].Recipients)
	require.Contains(t, msgs[1].Message, "Dinner")
}

func TestMessagesFor_RequestCreated_NoEmailWithoutAddress(t *testing.T) {
	t.Parallel()

	p := entity.RequestEventPayload{
		RequestID:   uuid.Must(uuid.NewV4()),
		RecipientID: uuid.Must(uuid.NewV4()),
		Amount:      decimal.New(25, 0),
		Currency:    "USD",
		SenderName:  "alice",
	}

	msgs, err := messagesFor(mustEvent(t, entity.EventRequestCreated, p))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "notification", msgs[0].Type)
}

func TestMessagesFor_RequestPaid_NotifiesSender(t *testing.T) {
	t.Parallel()

	p := entity.RequestEventPayload{
		RequestID:     uuid.Must(uuid.NewV4()),
		SenderID:      uuid.Must(uuid.NewV4()),
		RecipientID:   uuid.Must(uuid.NewV4()),
		Amount:        decimal.New(30, 0),
		Currency:      "EUR",
		TransactionID: "tx-9",
		RecipientName: "bob",
		SenderEmail:   "alice@example.com",
	}

	msgs, err := messagesFor(mustEvent(t, entity.EventRequestPaid, p))
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.Equal(t, p.SenderID.String(), msgs[0].UserID, "the sender asked, the sender is told")
	require.Contains(t, msgs[1].Message, "tx-9")
}

func TestMessagesFor_VoucherRedeemed_FanOut(t *testing.T) {
	t.Parallel()

	redeemerID := uuid.Must(uuid.NewV4())
	p := entity.VoucherEventPayload{
		VoucherID:     uuid.Must(uuid.NewV4()),
		Code:          "VOUCHER1234567890ABC",
		CreatorID:     uuid.Must(uuid.NewV4()),
		RedeemerID:    &redeemerID,
		Amount:        decimal.New(50, 0),
		Currency:      "USD",
		RedeemerName:  "bob",
		CreatorEmail:  "alice@example.com",
		RedeemerEmail: "bob@example.com",
	}

	msgs, err := messagesFor(mustEvent(t, entity.EventVoucherRedeemed, p))
	require.NoError(t, err)
	require.Len(t, msgs, 4, "both parties get a notification and an email")

	require.Equal(t, p.CreatorID.String(), msgs[0].UserID)
	require.Equal(t, redeemerID.String(), msgs[1].UserID)
	require.Equal(t, []string{"alice@example.com"}, msgs[2].Recipients)
	require.Equal(t, []string{"bob@example.com"}, msgs[3].Recipients)
}

func TestMessagesFor_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := messagesFor(entity.OutboxEvent{Type: "bogus", Payload: []byte(`{}`)})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
