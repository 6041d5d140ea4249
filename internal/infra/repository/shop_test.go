//go:build e2e

package repository

import (
	"context"
	"testing"
	"time"

	"schnittwerk-api/internal/domain/voucher"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/usecase/commands"
	"schnittwerk-api/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ShopRepositoryTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	products *ProductRepository
	vouchers *VoucherRepository
	orders   *OrderRepository
	views    *OrderReadStore
	ctx      context.Context
}

func TestShopRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShopRepositoryTestSuite))
}

func (s *ShopRepositoryTestSuite) SetupSuite() {
	pool, _ := dbtest.Setup(s.T())
	s.pool = pool
	s.products = NewProductRepository(pool)
	s.vouchers = NewVoucherRepository(pool)
	s.orders = NewOrderRepository(pool)
	s.views = NewOrderReadStore(pool)
	s.ctx = context.Background()
}

func (s *ShopRepositoryTestSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.pool))
}

func (s *ShopRepositoryTestSuite) TestFindByIDs() {
	shampoo := dbtest.CreateTestProduct(s.T(), s.pool, "Shampoo", "shampoo", 2400, 10, true)
	wax := dbtest.CreateTestProduct(s.T(), s.pool, "Wax", "wax", 1900, 5, false)

	snaps, err := s.products.FindByIDs(s.ctx, []uuid.UUID{shampoo, wax, uuid.New()})

	s.Require().NoError(err)
	s.Require().Len(snaps, 2)

	byID := map[uuid.UUID]commands.ProductSnapshot{}
	for _, snap := range snaps {
		byID[snap.ID] = snap
	}
	s.Equal(int64(2400), byID[shampoo].PriceCents)
	s.Equal(10, byID[shampoo].Stock)
	s.True(byID[shampoo].Active)
	s.False(byID[wax].Active)
}

func (s *ShopRepositoryTestSuite) TestDecrementStock() {
	shampoo := dbtest.CreateTestProduct(s.T(), s.pool, "Shampoo", "shampoo", 2400, 5, true)

	s.Run("takes stock down by the quantity", func() {
		err := s.products.DecrementStock(s.ctx, s.pool, shampoo, 3)

		s.Require().NoError(err)
		snaps, err := s.products.FindByIDs(s.ctx, []uuid.UUID{shampoo})
		s.Require().NoError(err)
		s.Equal(2, snaps[0].Stock)
	})

	s.Run("refuses to go below zero", func() {
		err := s.products.DecrementStock(s.ctx, s.pool, shampoo, 3)

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))

		snaps, err := s.products.FindByIDs(s.ctx, []uuid.UUID{shampoo})
		s.Require().NoError(err)
		s.Equal(2, snaps[0].Stock)
	})
}

func (s *ShopRepositoryTestSuite) TestFindByCode() {
	minSpend := int64(5000)
	expires := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	uses := int32(3)
	dbtest.CreateTestVoucher(s.T(), s.pool, "WELCOME10", "percent", 10, &minSpend, &expires, &uses, nil)

	s.Run("restores every constraint field", func() {
		snap, err := s.vouchers.FindByCode(s.ctx, "WELCOME10")

		s.Require().NoError(err)
		s.Equal("WELCOME10", snap.Voucher.Code)
		s.Equal(voucher.KindPercent, snap.Voucher.Kind)
		s.Equal(int64(10), snap.Voucher.Value)
		s.Require().NotNil(snap.Voucher.MinSpendCents)
		s.Equal(minSpend, *snap.Voucher.MinSpendCents)
		s.Require().NotNil(snap.Voucher.RemainingUses)
		s.Equal(uses, *snap.Voucher.RemainingUses)
		s.Nil(snap.Voucher.Active)
	})

	s.Run("unknown code", func() {
		_, err := s.vouchers.FindByCode(s.ctx, "NO-SUCH-CODE")

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *ShopRepositoryTestSuite) TestDecrementUses() {
	uses := int32(2)
	limited := dbtest.CreateTestVoucher(s.T(), s.pool, "LIMITED", "amount", 500, nil, nil, &uses, nil)
	unlimited := dbtest.CreateTestVoucher(s.T(), s.pool, "UNLIMITED", "amount", 500, nil, nil, nil, nil)

	s.Run("limited voucher loses one use", func() {
		err := s.vouchers.DecrementUses(s.ctx, s.pool, limited)

		s.Require().NoError(err)
		snap, err := s.vouchers.FindByCode(s.ctx, "LIMITED")
		s.Require().NoError(err)
		s.Require().NotNil(snap.Voucher.RemainingUses)
		s.Equal(int32(1), *snap.Voucher.RemainingUses)
	})

	s.Run("unlimited voucher stays unlimited", func() {
		err := s.vouchers.DecrementUses(s.ctx, s.pool, unlimited)

		s.Require().NoError(err)
		snap, err := s.vouchers.FindByCode(s.ctx, "UNLIMITED")
		s.Require().NoError(err)
		s.Nil(snap.Voucher.RemainingUses)
	})
}

func (s *ShopRepositoryTestSuite) TestCreateAndReadOrder() {
	customerID := dbtest.CreateTestUser(s.T(), s.pool, "anna@example.com", "customer")
	shampoo := dbtest.CreateTestProduct(s.T(), s.pool, "Shampoo", "shampoo", 2400, 10, true)
	wax := dbtest.CreateTestProduct(s.T(), s.pool, "Wax", "wax", 1900, 5, true)
	voucherID := dbtest.CreateTestVoucher(s.T(), s.pool, "WELCOME10", "percent", 10, nil, nil, nil, nil)

	createdAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	order := &commands.OrderRecord{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        "pending",
		SubtotalCents: 6700,
		DiscountCents: 670,
		TotalCents:    6030,
		Currency:      "CHF",
		VoucherID:     &voucherID,
		Lines: []commands.OrderLine{
			{ProductID: shampoo, Name: "Shampoo", Quantity: 2, UnitCents: 2400},
			{ProductID: wax, Name: "Wax", Quantity: 1, UnitCents: 1900},
		},
		CreatedAt: createdAt,
	}

	s.Require().NoError(s.orders.Create(s.ctx, s.pool, order))

	s.Run("FindByID joins voucher code and items", func() {
		view, err := s.views.FindByID(s.ctx, order.ID)

		s.Require().NoError(err)
		s.Equal("pending", view.Status)
		s.Equal(int64(6700), view.SubtotalCents)
		s.Equal(int64(670), view.DiscountCents)
		s.Equal(int64(6030), view.TotalCents)
		s.Require().NotNil(view.VoucherCode)
		s.Equal("WELCOME10", *view.VoucherCode)
		s.Require().Len(view.Items, 2)
	})

	s.Run("CustomerIDOf resolves the owner", func() {
		ownerID, err := s.views.CustomerIDOf(s.ctx, order.ID)

		s.Require().NoError(err)
		s.Equal(customerID, ownerID)
	})

	s.Run("ListForCustomer only lists the caller's orders", func() {
		otherID := dbtest.CreateTestUser(s.T(), s.pool, "beat@example.com", "customer")

		views, err := s.views.ListForCustomer(s.ctx, customerID)
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(order.ID, views[0].ID)

		views, err = s.views.ListForCustomer(s.ctx, otherID)
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("duplicate order id is rejected", func() {
		err := s.orders.Create(s.ctx, s.pool, order)

		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})
}
