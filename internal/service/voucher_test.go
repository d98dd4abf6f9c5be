package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pocketpay/instruments/internal/entity"
	"github.com/pocketpay/instruments/internal/mocks"
	"github.com/pocketpay/instruments/internal/service"
)

type voucherMocks struct {
	repo   *mocks.MockVoucherRepository
	users  *mocks.MockUserDirectory
	events *mocks.MockEventRecorder
	codes  *mocks.MockCodeIssuer
}

func newVoucherService(t *testing.T) (*service.VoucherService, voucherMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := voucherMocks{
		repo:   mocks.NewMockVoucherRepository(ctrl),
		users:  mocks.NewMockUserDirectory(ctrl),
		events: mocks.NewMockEventRecorder(ctrl),
		codes:  mocks.NewMockCodeIssuer(ctrl),
	}

	return service.NewVoucherService(m.repo, m.users, m.events, m.codes, service.NewSecretVerifier()), m
}

func activeVoucher() entity.Voucher {
	return entity.Voucher{
		ID:        uuid.Must(uuid.NewV4()),
		Code:      "VOUCHER1234567890ABC",
		CreatorID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.New(50, 0),
		Currency:  "USD",
		Status:    entity.VoucherStatusActive,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestVoucherService_CreateVoucher(t *testing.T) {
	t.Parallel()

	t.Run("creates active voucher without pin", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)

		creator := entity.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
		amount := decimal.New(50, 0)

		m.users.EXPECT().User(gomock.Any(), creator.ID).Return(creator, nil)
		m.codes.EXPECT().Generate(gomock.Any()).Return("VOUCHER1234567890ABC", nil)

		var stored entity.Voucher
		m.repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v entity.Voucher) error {
				stored = v
				return nil
			})
		m.events.EXPECT().VoucherCreated(gomock.Any(), gomock.Any(), creator)

		v, err := s.CreateVoucher(context.Background(), creator.ID, amount, "USD", "", 48)
		require.NoError(t, err)

		require.Equal(t, stored, v)
		require.Equal(t, "VOUCHER1234567890ABC", v.Code)
		require.Equal(t, entity.VoucherStatusActive, v.Status)
		require.False(t, v.HasPIN())
		require.WithinDuration(t, time.Now().Add(48*time.Hour), v.ExpiresAt, time.Minute)
	})

	t.Run("stores only the pin digest", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)

		creator := entity.User{ID: uuid.Must(uuid.NewV4())}

		m.users.EXPECT().User(gomock.Any(), creator.ID).Return(creator, nil)
		m.codes.EXPECT().Generate(gomock.Any()).Return("VOUCHER1234567890ABC", nil)
		m.repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().VoucherCreated(gomock.Any(), gomock.Any(), creator)

		v, err := s.CreateVoucher(context.Background(), creator.ID, decimal.New(10, 0), "USD", "1234", 24)
		require.NoError(t, err)

		require.True(t, v.HasPIN())
		require.NotContains(t, v.PINHash, "1234")
		require.True(t, service.NewSecretVerifier().Verify("1234", v.PINHash))
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		s, _ := newVoucherService(t)
		creatorID := uuid.Must(uuid.NewV4())

		_, err := s.CreateVoucher(context.Background(), creatorID, decimal.Zero, "USD", "", 24)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)

		_, err = s.CreateVoucher(context.Background(), creatorID, decimal.New(10, 0), "", "", 24)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)

		_, err = s.CreateVoucher(context.Background(), creatorID, decimal.New(10, 0), "USD", "", 0)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestVoucherService_Voucher_NormalizesCode(t *testing.T) {
	t.Parallel()

	s, m := newVoucherService(t)
	v := activeVoucher()

	m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)

	got, err := s.Voucher(context.Background(), "  voucher1234567890abc ")
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestVoucherService_Redeem(t *testing.T) {
	t.Parallel()

	t.Run("redeems active voucher", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		redeemerID := uuid.Must(uuid.NewV4())

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)
		m.repo.EXPECT().MarkRedeemed(gomock.Any(), v.Code, redeemerID, gomock.Any()).Return(nil)
		m.users.EXPECT().User(gomock.Any(), v.CreatorID).Return(entity.User{ID: v.CreatorID}, nil)
		m.users.EXPECT().User(gomock.Any(), redeemerID).Return(entity.User{ID: redeemerID}, nil)
		m.events.EXPECT().VoucherRedeemed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		got, err := s.Redeem(context.Background(), v.Code, redeemerID, "")
		require.NoError(t, err)
		require.Equal(t, entity.VoucherStatusRedeemed, got.Status)
		require.NotNil(t, got.RedeemedAt)
		require.NotNil(t, got.RedeemedBy)
		require.Equal(t, redeemerID, *got.RedeemedBy)
	})

	t.Run("rejects double redemption", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.Status = entity.VoucherStatusRedeemed

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)

		_, err := s.Redeem(context.Background(), v.Code, uuid.Must(uuid.NewV4()), "")
		require.ErrorIs(t, err, entity.ErrInvalidOperation)
		require.ErrorContains(t, err, "redeemed")
	})

	t.Run("finalizes overdue voucher instead of redeeming", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.ExpiresAt = time.Now().Add(-time.Minute)

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)
		m.repo.EXPECT().MarkExpired(gomock.Any(), v.Code, gomock.Any()).Return(nil)

		_, err := s.Redeem(context.Background(), v.Code, uuid.Must(uuid.NewV4()), "")
		require.ErrorIs(t, err, entity.ErrExpired)
	})

	t.Run("creator cannot redeem own voucher", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)

		_, err := s.Redeem(context.Background(), v.Code, v.CreatorID, "")
		require.ErrorIs(t, err, entity.ErrInvalidOperation)
		require.ErrorContains(t, err, "cannot redeem your own voucher")
	})

	t.Run("pin required when set", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.PINHash = service.NewSecretVerifier().Hash("1234")

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)

		_, err := s.Redeem(context.Background(), v.Code, uuid.Must(uuid.NewV4()), "")
		require.ErrorIs(t, err, entity.ErrInvalidSecret)
	})

	t.Run("rejects wrong pin", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.PINHash = service.NewSecretVerifier().Hash("1234")

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)

		_, err := s.Redeem(context.Background(), v.Code, uuid.Must(uuid.NewV4()), "9999")
		require.ErrorIs(t, err, entity.ErrInvalidSecret)
	})

	t.Run("accepts correct pin", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.PINHash = service.NewSecretVerifier().Hash("1234")
		redeemerID := uuid.Must(uuid.NewV4())

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)
		m.repo.EXPECT().MarkRedeemed(gomock.Any(), v.Code, redeemerID, gomock.Any()).Return(nil)
		m.users.EXPECT().User(gomock.Any(), v.CreatorID).Return(entity.User{ID: v.CreatorID}, nil)
		m.users.EXPECT().User(gomock.Any(), redeemerID).Return(entity.User{ID: redeemerID}, nil)
		m.events.EXPECT().VoucherRedeemed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		got, err := s.Redeem(context.Background(), v.Code, redeemerID, "1234")
		require.NoError(t, err)
		require.Equal(t, entity.VoucherStatusRedeemed, got.Status)
	})

	t.Run("reports winning state on lost race", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		redeemerID := uuid.Must(uuid.NewV4())

		won := v
		won.Status = entity.VoucherStatusCancelled

		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)
		m.repo.EXPECT().MarkRedeemed(gomock.Any(), v.Code, redeemerID, gomock.Any()).Return(entity.ErrNotFound)
		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(won, nil)

		_, err := s.Redeem(context.Background(), v.Code, redeemerID, "")
		require.ErrorIs(t, err, entity.ErrInvalidOperation)
		require.ErrorContains(t, err, "cancelled")
	})
}

func TestVoucherService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("cancels active voucher", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		v.Status = entity.VoucherStatusCancelled

		m.repo.EXPECT().MarkCancelled(gomock.Any(), v.Code, v.CreatorID, gomock.Any()).Return(nil)
		m.repo.EXPECT().VoucherByCode(gomock.Any(), v.Code).Return(v, nil)
		m.users.EXPECT().User(gomock.Any(), v.CreatorID).Return(entity.User{ID: v.CreatorID}, nil)
		m.events.EXPECT().VoucherCancelled(gomock.Any(), v, gomock.Any())

		ok, err := s.Cancel(context.Background(), v.Code, v.CreatorID)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("false when not permitted", func(t *testing.T) {
		t.Parallel()

		s, m := newVoucherService(t)
		v := activeVoucher()
		stranger := uuid.Must(uuid.NewV4())

		m.repo.EXPECT().MarkCancelled(gomock.Any(), v.Code, stranger, gomock.Any()).Return(entity.ErrNotFound)

		ok, err := s.Cancel(context.Background(), v.Code, stranger)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestVoucherService_CleanupExpired(t *testing.T) {
	t.Parallel()

	s, m := newVoucherService(t)

	m.repo.EXPECT().ExpireActive(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	count, err := s.CleanupExpired(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestVoucherService_Stats(t *testing.T) {
	t.Parallel()

	s, m := newVoucherService(t)
	creatorID := uuid.Must(uuid.NewV4())

	want := entity.VoucherStats{
		TotalCreated:        4,
		TotalRedeemed:       1,
		TotalAmountCreated:  decimal.New(200, 0),
		TotalAmountRedeemed: decimal.New(50, 0),
		StatusBreakdown: map[entity.VoucherStatus]int{
			entity.VoucherStatusActive:   2,
			entity.VoucherStatusRedeemed: 1,
			entity.VoucherStatusExpired:  1,
		},
	}

	m.repo.EXPECT().Stats(gomock.Any(), creatorID).Return(want, nil)

	got, err := s.Stats(context.Background(), creatorID)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.InDelta(t, 25.0, got.SuccessRate(), 0.001)
}

func TestVoucherService_FormatResponse(t *testing.T) {
	t.Parallel()

	s, _ := newVoucherService(t)

	v := activeVoucher()
	view := s.FormatResponse(v)
	require.Equal(t, v.Code, view.Code)
	require.NotEmpty(t, view.TimeRemaining, "active vouchers show a countdown")

	v.Status = entity.VoucherStatusRedeemed
	view = s.FormatResponse(v)
	require.Empty(t, view.TimeRemaining, "finished vouchers show no countdown")
}
