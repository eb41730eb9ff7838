package services_test

import (
	"context"
	"testing"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/services"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  *services.CartService
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewCartService(suite.mockRepo)
}

func (suite *CartServiceTestSuite) catalogFan() *models.Product {
	return &models.Product{
		ProductID: "fan-1",
		Name:      "Portable USB Fan",
		Price:     decimal.NewFromInt(29),
		Icon:      "🌀",
		IsActive:  true,
	}
}

func (suite *CartServiceTestSuite) TestGetCart_NewSessionIsEmpty() {
	cart, totals := suite.service.GetCart(context.Background(), "sess-1")

	suite.Equal("sess-1", cart.SessionID)
	suite.Empty(cart.Items)
	suite.Equal(0, totals.ItemCount)
	suite.True(totals.TotalReference.IsZero())
	suite.Equal(models.ReferenceCurrencyCode, totals.Currency.Code)
}

func (suite *CartServiceTestSuite) TestAddItem_AccumulatesQuantity() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Twice()

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)
	cart, totals, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	suite.Require().Len(cart.Items, 1)
	suite.Equal(2, cart.Items[0].Quantity)
	suite.Equal(2, totals.ItemCount)
	suite.True(totals.TotalReference.Equal(decimal.RequireFromString("58")), "total was %s", totals.TotalReference)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CartServiceTestSuite) TestAddItem_UnknownProductIsNoOp() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "ghost-1").Return(nil, apperrors.ErrNotFound).Once()

	cart, totals, err := suite.service.AddItem(ctx, "sess-1", "ghost-1")

	suite.Require().NoError(err)
	suite.Empty(cart.Items)
	suite.Equal(0, totals.ItemCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CartServiceTestSuite) TestRemoveItem_AbsentEntryIsNoOp() {
	cart, totals := suite.service.RemoveItem(context.Background(), "sess-1", "ghost-1")

	suite.Empty(cart.Items)
	suite.Equal(0, totals.ItemCount)
}

func (suite *CartServiceTestSuite) TestUpdateQuantity_DeltaBelowOneRemovesEntry() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Once()

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	cart, _ := suite.service.UpdateQuantity(ctx, "sess-1", "fan-1", -1)
	suite.Empty(cart.Items)

	// A further delta for the removed entry does nothing.
	cart, totals := suite.service.UpdateQuantity(ctx, "sess-1", "fan-1", 3)
	suite.Empty(cart.Items)
	suite.Equal(0, totals.ItemCount)
}

func (suite *CartServiceTestSuite) TestTotals_LocalTotalUsesSessionRate() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Twice()

	suite.service.SetCurrencyContext("sess-1", models.CurrencyContext{
		Code:   "KZT",
		Symbol: "₸",
		Rate:   decimal.RequireFromString("478.35"),
	})

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)
	_, totals, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	// 58 * 478.35 = 27744.30, rounded to whole local units.
	suite.True(totals.TotalReference.Equal(decimal.RequireFromString("58")))
	suite.True(totals.TotalLocal.Equal(decimal.RequireFromString("27744")), "local total was %s", totals.TotalLocal)
	suite.Equal("KZT", totals.Currency.Code)
}

func (suite *CartServiceTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Once()

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	cart, _ := suite.service.GetCart(ctx, "sess-2")
	suite.Empty(cart.Items)
}

func (suite *CartServiceTestSuite) TestCheckout_EmptyCartFails() {
	_, err := suite.service.Checkout(context.Background(), "sess-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CartServiceTestSuite) TestCheckout_SummarizesAndClears() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Once()

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	summary, err := suite.service.Checkout(ctx, "sess-1")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ItemCount)
	suite.Require().Len(summary.Items, 1)
	suite.Equal("fan-1", summary.Items[0].ProductID)
	suite.False(summary.PlacedAt.IsZero())

	cart, _ := suite.service.GetCart(ctx, "sess-1")
	suite.Empty(cart.Items)
}

func (suite *CartServiceTestSuite) TestClearCart() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "fan-1").Return(suite.catalogFan(), nil).Once()

	_, _, err := suite.service.AddItem(ctx, "sess-1", "fan-1")
	suite.Require().NoError(err)

	suite.service.ClearCart(ctx, "sess-1")

	cart, totals := suite.service.GetCart(ctx, "sess-1")
	suite.Empty(cart.Items)
	suite.Equal(0, totals.ItemCount)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
