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

//go:generate go run go.uber.org/mock/mockgen@latest -source=request.go -destination=../mocks/request.go -package=mocks

type RequestRepository interface {
	CreateRequest(ctx context.Context, req entity.PaymentRequest) error
	Request(ctx context.Context, id uuid.UUID) (entity.PaymentRequest, error)
	Requests(ctx context.Context, userID uuid.UUID, f entity.RequestFilter) ([]entity.PaymentRequest, error)
	RecentDescriptions(ctx context.Context, userID uuid.UUID, limit uint64) ([]string, error)
	UpdatePending(ctx context.Context, id, senderID uuid.UUID, upd entity.RequestUpdate, updatedAt time.Time) (entity.PaymentRequest, error)
	MarkCancelled(ctx context.Context, id, senderID uuid.UUID, updatedAt time.Time) error
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, transactionID string) error
	MarkExpired(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type UserDirectory interface {
	User(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByUsername(ctx context.Context, username string) (entity.User, error)
}

// EventRecorder stages domain events for the notifier. Recording happens
// after the instrument transition committed and must never fail the caller.
type EventRecorder interface {
	RequestCreated(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User)
	RequestCancelled(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User)
	RequestPaid(ctx context.Context, req entity.PaymentRequest, sender, recipient entity.User)
	VoucherCreated(ctx context.Context, v entity.Voucher, creator entity.User)
	VoucherRedeemed(ctx context.Context, v entity.Voucher, creator, redeemer entity.User)
	VoucherCancelled(ctx context.Context, v entity.Voucher, creator entity.User)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100

	templateCap          = 10
	templateHistoryDepth = 50
)

// RequestService is the payment request state machine. The sender asks, the
// recipient pays; nobody else sees the request.
type RequestService struct {
	repo          RequestRepository
	users         UserDirectory
	events        EventRecorder
	defaultExpiry time.Duration
}

func NewRequestService(repo RequestRepository, users UserDirectory, events EventRecorder, defaultExpiry time.Duration) *RequestService {
	return &RequestService{
		repo:          repo,
		users:         users,
		events:        events,
		defaultExpiry: defaultExpiry,
	}
}

// CreateRequest opens a pending request from the sender to the user named by
// recipientUsername. A nil expiresAt falls back to the configured default
// window.
func (s *RequestService) CreateRequest(
	ctx context.Context,
	senderID uuid.UUID,
	recipientUsername string,
	amount decimal.Decimal,
	currency string,
	description string,
	expiresAt *time.Time,
) (entity.PaymentRequest, error) {
	if !amount.IsPositive() {
		return entity.PaymentRequest{}, fmt.Errorf("%w: amount must be positive", entity.ErrInvalidArgument)
	}

	if currency == "" {
		return entity.PaymentRequest{}, fmt.Errorf("%w: currency is required", entity.ErrInvalidArgument)
	}

	sender, err := s.users.User(ctx, senderID)
	if err != nil {
		return entity.PaymentRequest{}, fmt.Errorf("get sender %s: %w", senderID, err)
	}

	recipient, err := s.users.UserByUsername(ctx, recipientUsername)
	if err != nil {
		return entity.PaymentRequest{}, fmt.Errorf("get recipient %q: %w", recipientUsername, err)
	}

	if recipient.ID == senderID {
		return entity.PaymentRequest{}, fmt.Errorf("%w: cannot request payment from yourself", entity.ErrInvalidOperation)
	}

	now := time.Now()

	expiry := now.Add(s.defaultExpiry)
	if expiresAt != nil {
		expiry = *expiresAt
	}

	if !expiry.After(now) {
		return entity.PaymentRequest{}, fmt.Errorf("%w: expiry must be in the future", entity.ErrInvalidArgument)
	}

	req := entity.PaymentRequest{
		ID:          uuid.Must(uuid.NewV4()),
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Status:      entity.RequestStatusPending,
		ExpiresAt:   expiry,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.CreateRequest(ctx, req)
	if err != nil {
		return entity.PaymentRequest{}, fmt.Errorf("create request: %w", err)
	}

	s.events.RequestCreated(ctx, req, sender, recipient)

	slog.InfoContext(ctx, "payment request created",
		"request_id", req.ID, "sender_id", senderID, "recipient_id", recipient.ID, "amount", amount)

	return req, nil
}

// Requests lists requests the user is a party to, newest first.
func (s *RequestService) Requests(ctx context.Context, userID uuid.UUID, f entity.RequestFilter) ([]entity.PaymentRequest, error) {
	f.Limit = clampLimit(f.Limit)

	requests, err := s.repo.Requests(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return requests, nil
}

// Request returns the request if the user is a party to it; ErrNotFound
// otherwise, hiding its existence from strangers.
func (s *RequestService) Request(ctx context.Context, id, userID uuid.UUID) (entity.PaymentRequest, error) {
	req, err := s.repo.Request(ctx, id)
	if err != nil {
		return entity.PaymentRequest{}, fmt.Errorf("get request %s: %w", id, err)
	}

	if !req.VisibleTo(userID) {
		return entity.PaymentRequest{}, fmt.Errorf("request %s: %w", id, entity.ErrNotFound)
	}

	return req, nil
}

// Update edits a pending request. Only the sender may edit, only while
// pending; any other caller or state yields nil without a distinct error.
func (s *RequestService) Update(ctx context.Context, id, userID uuid.UUID, upd entity.RequestUpdate) (*entity.PaymentRequest, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", entity.ErrInvalidArgument)
	}

	if upd.Amount != nil && !upd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", entity.ErrInvalidArgument)
	}

	if upd.ExpiresAt != nil && !upd.ExpiresAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: expiry must be in the future", entity.ErrInvalidArgument)
	}

	req, err := s.repo.UpdatePending(ctx, id, userID, upd, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("update request %s: %w", id, err)
	}

	return &req, nil
}

// Cancel is the sender's pending -> cancelled transition. False when the
// caller is not the sender or the request is no longer pending.
func (s *RequestService) Cancel(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	err := s.repo.MarkCancelled(ctx, id, userID, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("cancel request %s: %w", id, err)
	}

	req, err := s.repo.Request(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "load cancelled request for notification", "request_id", id, "error", err)
		return true, nil
	}

	sender, recipient := s.requestParties(ctx, req)
	s.events.RequestCancelled(ctx, req, sender, recipient)

	slog.InfoContext(ctx, "payment request cancelled", "request_id", id, "sender_id", userID)

	return true, nil
}

// Pay settles a pending request. The payer must be the recorded recipient —
// the debtor whose balance moves. An overdue request is finalized to expired
// and nil is returned, never a payment. A nil, nil result likewise means a
// concurrent transition won.
func (s *RequestService) Pay(ctx context.Context, id, payerID uuid.UUID, transactionID string) (*entity.PaymentRequest, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", entity.ErrInvalidArgument)
	}

	req, err := s.repo.Request(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request %s: %w", id, err)
	}

	if req.RecipientID != payerID {
		return nil, fmt.Errorf("%w: only the requested recipient can pay", entity.ErrInvalidOperation)
	}

	if req.Status != entity.RequestStatusPending {
		return nil, fmt.Errorf("%w: request is %s", entity.ErrInvalidOperation, req.Status)
	}

	now := time.Now()

	if req.Expired(now) {
		err = s.repo.MarkExpired(ctx, id, now)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("expire request %s: %w", id, err)
		}

		slog.InfoContext(ctx, "payment attempt on expired request", "request_id", id, "payer_id", payerID)

		return nil, nil
	}

	err = s.repo.MarkPaid(ctx, id, now, transactionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Lost the race against a concurrent pay, cancel or sweep.
			return nil, nil
		}

		return nil, fmt.Errorf("mark request %s paid: %w", id, err)
	}

	req.Status = entity.RequestStatusPaid
	req.PaidAt = &now
	req.TransactionID = transactionID
	req.UpdatedAt = now

	sender, recipient := s.requestParties(ctx, req)
	s.events.RequestPaid(ctx, req, sender, recipient)

	slog.InfoContext(ctx, "payment request paid",
		"request_id", id, "payer_id", payerID, "transaction_id", transactionID)

	return &req, nil
}

// CleanupExpired finalizes every overdue pending request and returns the
// number processed. Safe to run concurrently with payments and cancels.
func (s *RequestService) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire pending requests: %w", err)
	}

	if count > 0 {
		slog.InfoContext(ctx, "expired payment requests", "count", count)
	}

	return count, nil
}

var defaultTemplates = []entity.RequestTemplate{
	{Name: "Dinner split", Amount: decimal.New(25, 0), Description: "Splitting the dinner bill"},
	{Name: "Shared ride", Amount: decimal.New(12, 0), Description: "My share of the ride"},
	{Name: "Group gift", Amount: decimal.New(20, 0), Description: "Chipping in for the gift"},
}

// Templates suggests prefills for new requests: a fixed default set extended
// with guesses from the user's recent request descriptions. Best effort — an
// empty or unreadable history still yields the defaults.
func (s *RequestService) Templates(ctx context.Context, userID uuid.UUID) []entity.RequestTemplate {
	templates := make([]entity.RequestTemplate, 0, templateCap)
	templates = append(templates, defaultTemplates...)

	descriptions, err := s.repo.RecentDescriptions(ctx, userID, templateHistoryDepth)
	if err != nil {
		slog.WarnContext(ctx, "load request history for templates", "user_id", userID, "error", err)
		return templates
	}

	suggested := map[string]bool{}

	for _, d := range descriptions {
		if len(templates) >= templateCap {
			break
		}

		d = strings.ToLower(d)

		switch {
		case strings.Contains(d, "lunch") || strings.Contains(d, "food"):
			if !suggested["lunch"] {
				suggested["lunch"] = true
				templates = append(templates, entity.RequestTemplate{
					Name:        "Lunch",
					Amount:      decimal.New(15, 0),
					Description: "Lunch money",
				})
			}
		case strings.Contains(d, "rent"):
			if !suggested["rent"] {
				suggested["rent"] = true
				templates = append(templates, entity.RequestTemplate{
					Name:        "Rent",
					Amount:      decimal.New(500, 0),
					Description: "Monthly rent share",
				})
			}
		case strings.Contains(d, "utility") || strings.Contains(d, "bill"):
			if !suggested["utility"] {
				suggested["utility"] = true
				templates = append(templates, entity.RequestTemplate{
					Name:        "Utilities",
					Amount:      decimal.New(75, 0),
					Description: "Utility bill share",
				})
			}
		}
	}

	if len(templates) > templateCap {
		templates = templates[:templateCap]
	}

	return templates
}

// requestParties resolves both users for notification payloads. Lookups are
// best effort: a directory outage must not fail the primary operation.
func (s *RequestService) requestParties(ctx context.Context, req entity.PaymentRequest) (sender, recipient entity.User) {
	sender, err := s.users.User(ctx, req.SenderID)
	if err != nil {
		slog.WarnContext(ctx, "resolve sender for notification", "user_id", req.SenderID, "error", err)
		sender = entity.User{ID: req.SenderID}
	}

	recipient, err = s.users.User(ctx, req.RecipientID)
	if err != nil {
		slog.WarnContext(ctx, "resolve recipient for notification", "user_id", req.RecipientID, "error", err)
		recipient = entity.User{ID: req.RecipientID}
	}

	return sender, recipient
}

func clampLimit(limit uint64) uint64 {
	if limit == 0 {
		return defaultListLimit
	}

	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}
