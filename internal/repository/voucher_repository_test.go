package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pocketpay/instruments/internal/entity"
	"github.com/pocketpay/instruments/internal/repository"
)

type VoucherRepositoryTestSuite struct {
	suite.Suite
	repo *repository.VoucherRepository
}

func (ts *VoucherRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewVoucherRepository(repository.SetupTestDatabase(ts.T()))
}

func TestVoucherRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(VoucherRepositoryTestSuite))
}

func activeVoucher() entity.Voucher {
	now := time.Now().UTC().Truncate(time.Microsecond)

	return entity.Voucher{
		ID:        uuid.Must(uuid.NewV4()),
		Code:      "V" + uuid.Must(uuid.NewV4()).String()[:19],
		CreatorID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.New(50, 0),
		Currency:  "USD",
		Status:    entity.VoucherStatusActive,
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (ts *VoucherRepositoryTestSuite) TestCreateAndGetVoucher() {
	ctx := context.Background()
	v := activeVoucher()
	v.PINHash = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"

	ts.Require().NoError(ts.repo.CreateVoucher(ctx, v))

	got, err := ts.repo.VoucherByCode(ctx, v.Code)
	ts.Require().NoError(err)
	ts.Require().Equal(v.ID, got.ID)
	ts.Require().Equal(v.Code, got.Code)
	ts.Require().Equal(v.PINHash, got.PINHash)
	ts.Require().True(v.Amount.Equal(got.Amount))
	ts.Require().Equal(entity.VoucherStatusActive, got.Status)
	ts.Require().Nil(got.RedeemedAt)
	ts.Require().Nil(got.RedeemedBy)
}

func (ts *VoucherRepositoryTestSuite) TestVoucherByCode_NotFound() {
	_, err := ts.repo.VoucherByCode(context.Background(), "NOSUCHCODE1234567890")
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *VoucherRepositoryTestSuite) TestCodeExists() {
	ctx := context.Background()
	v := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, v))

	exists, err := ts.repo.CodeExists(ctx, v.Code)
	ts.Require().NoError(err)
	ts.Require().True(exists)

	exists, err = ts.repo.CodeExists(ctx, "NOSUCHCODE1234567890")
	ts.Require().NoError(err)
	ts.Require().False(exists)
}

func (ts *VoucherRepositoryTestSuite) TestCreateVoucher_DuplicateCode() {
	ctx := context.Background()
	v := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, v))

	dup := activeVoucher()
	dup.Code = v.Code
	ts.Require().Error(ts.repo.CreateVoucher(ctx, dup))
}

func (ts *VoucherRepositoryTestSuite) TestMarkRedeemed_SingleWinner() {
	ctx := context.Background()
	v := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, v))

	winner := uuid.Must(uuid.NewV4())
	loser := uuid.Must(uuid.NewV4())

	ts.Require().NoError(ts.repo.MarkRedeemed(ctx, v.Code, winner, time.Now()))

	// Every later transition attempt loses the compare-and-set.
	ts.Require().ErrorIs(ts.repo.MarkRedeemed(ctx, v.Code, loser, time.Now()), entity.ErrNotFound)
	ts.Require().ErrorIs(ts.repo.MarkCancelled(ctx, v.Code, v.CreatorID, time.Now()), entity.ErrNotFound)
	ts.Require().ErrorIs(ts.repo.MarkExpired(ctx, v.Code, time.Now()), entity.ErrNotFound)

	got, err := ts.repo.VoucherByCode(ctx, v.Code)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.VoucherStatusRedeemed, got.Status)
	ts.Require().NotNil(got.RedeemedBy)
	ts.Require().Equal(winner, *got.RedeemedBy)
	ts.Require().NotNil(got.RedeemedAt)
}

func (ts *VoucherRepositoryTestSuite) TestMarkCancelled_OnlyCreator() {
	ctx := context.Background()
	v := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, v))

	ts.Require().ErrorIs(ts.repo.MarkCancelled(ctx, v.Code, uuid.Must(uuid.NewV4()), time.Now()), entity.ErrNotFound)
	ts.Require().NoError(ts.repo.MarkCancelled(ctx, v.Code, v.CreatorID, time.Now()))

	got, err := ts.repo.VoucherByCode(ctx, v.Code)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.VoucherStatusCancelled, got.Status)
}

func (ts *VoucherRepositoryTestSuite) TestExpireActive() {
	ctx := context.Background()

	overdue := activeVoucher()
	overdue.CreatedAt = time.Now().Add(-48 * time.Hour)
	overdue.ExpiresAt = time.Now().Add(-time.Minute)
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, overdue))

	fresh := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, fresh))

	redeemed := activeVoucher()
	redeemed.CreatedAt = time.Now().Add(-48 * time.Hour)
	redeemed.ExpiresAt = time.Now().Add(-time.Minute)
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, redeemed))
	ts.Require().NoError(ts.repo.MarkRedeemed(ctx, redeemed.Code, uuid.Must(uuid.NewV4()), time.Now()))

	count, err := ts.repo.ExpireActive(ctx, time.Now())
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), count)

	got, err := ts.repo.VoucherByCode(ctx, overdue.Code)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.VoucherStatusExpired, got.Status)

	// A redeemed voucher stays redeemed even when overdue.
	got, err = ts.repo.VoucherByCode(ctx, redeemed.Code)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.VoucherStatusRedeemed, got.Status)
}

func (ts *VoucherRepositoryTestSuite) TestVouchers_FiltersByParty() {
	ctx := context.Background()

	created := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, created))

	redeemed := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, redeemed))
	ts.Require().NoError(ts.repo.MarkRedeemed(ctx, redeemed.Code, created.CreatorID, time.Now()))

	unrelated := activeVoucher()
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, unrelated))

	vouchers, err := ts.repo.Vouchers(ctx, created.CreatorID, entity.VoucherFilter{Limit: 10})
	ts.Require().NoError(err)
	ts.Require().Len(vouchers, 2)

	status := entity.VoucherStatusRedeemed
	vouchers, err = ts.repo.Vouchers(ctx, created.CreatorID, entity.VoucherFilter{Status: &status, Limit: 10})
	ts.Require().NoError(err)
	ts.Require().Len(vouchers, 1)
	ts.Require().Equal(redeemed.Code, vouchers[0].Code)
}

func (ts *VoucherRepositoryTestSuite) TestStats() {
	ctx := context.Background()
	creatorID := uuid.Must(uuid.NewV4())

	active := activeVoucher()
	active.CreatorID = creatorID
	active.Amount = decimal.New(100, 0)
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, active))

	redeemed := activeVoucher()
	redeemed.CreatorID = creatorID
	redeemed.Amount = decimal.New(50, 0)
	ts.Require().NoError(ts.repo.CreateVoucher(ctx, redeemed))
	ts.Require().NoError(ts.repo.MarkRedeemed(ctx, redeemed.Code, uuid.Must(uuid.NewV4()), time.Now()))

	stats, err := ts.repo.Stats(ctx, creatorID)
	ts.Require().NoError(err)
	ts.Require().Equal(2, stats.TotalCreated)
	ts.Require().Equal(1, stats.TotalRedeemed)
	ts.Require().True(stats.TotalAmountCreated.Equal(decimal.New(150, 0)))
	ts.Require().True(stats.TotalAmountRedeemed.Equal(decimal.New(50, 0)))
	ts.Require().Equal(1, stats.StatusBreakdown[entity.VoucherStatusActive])
	ts.Require().Equal(1, stats.StatusBreakdown[entity.VoucherStatusRedeemed])
	ts.Require().InDelta(50.0, stats.SuccessRate(), 0.001)
}
