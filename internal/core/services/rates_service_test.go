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

type RatesServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	service      *services.RatesService
}

func (suite *RatesServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewRatesService(suite.mockProvider)
}

func (suite *RatesServiceTestSuite) TestPairRate_NormalizesCodes() {
	ctx := context.Background()
	expected := &models.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "KZT", Rate: decimal.RequireFromString("478.35")}

	suite.mockProvider.On("PairRate", ctx, "USD", "KZT").Return(expected, nil).Once()

	rate, err := suite.service.PairRate(ctx, "usd", " kzt ")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RatesServiceTestSuite) TestPairRate_SameCodeShortCircuits() {
	rate, err := suite.service.PairRate(context.Background(), "USD", "usd")

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	suite.mockProvider.AssertNotCalled(suite.T(), "PairRate")
}

func (suite *RatesServiceTestSuite) TestPairRate_BadCodeRejected() {
	_, err := suite.service.PairRate(context.Background(), "US", "KZT")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "PairRate")
}

func (suite *RatesServiceTestSuite) TestLatestRates() {
	ctx := context.Background()
	expected := &models.RateTable{BaseCode: "USD"}

	suite.mockProvider.On("LatestRates", ctx, "USD").Return(expected, nil).Once()

	table, err := suite.service.LatestRates(ctx, "usd")

	suite.Require().NoError(err)
	suite.Equal(expected, table)
}

func TestRatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatesServiceTestSuite))
}
