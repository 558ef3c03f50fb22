package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// Hedging routes share the router wired up in ExchangeRateHandlerTestSuite.
type HedgingHandlerTestSuite struct {
	ExchangeRateHandlerTestSuite
}

func validPositionBody() dto.CreateHedgingPositionRequest {
	return dto.CreateHedgingPositionRequest{
		Currency:      "USD",
		Type:          "forward",
		Amount:        decimal.NewFromInt(100000),
		StrikeRate:    decimal.NewFromFloat(600.50),
		CurrentRate:   decimal.NewFromFloat(612.25),
		MaturityDate:  "2025-12-31",
		UnrealizedPnL: decimal.NewFromInt(-1175),
		Status:        "active",
	}
}

func (suite *HedgingHandlerTestSuite) TestCreateHedgingPosition_Success() {
	reqBody := validPositionBody()
	created := &domain.HedgingPosition{
		PositionID:    "pos_123",
		CurrencyCode:  "USD",
		Type:          domain.PositionForward,
		Amount:        reqBody.Amount,
		StrikeRate:    reqBody.StrikeRate,
		CurrentRate:   reqBody.CurrentRate,
		MaturityDate:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		UnrealizedPnL: reqBody.UnrealizedPnL,
		Status:        domain.PositionActive,
	}

	suite.mockHedging.On("CreateHedgingPosition", mock.Anything, reqBody, "tester").Return(created, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/hedging-positions", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.HedgingPositionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pos_123", resp.PositionID)
	suite.Equal("forward", resp.Type)
	suite.Equal("2025-12-31", resp.MaturityDate)
	suite.mockHedging.AssertExpectations(suite.T())
}

func (suite *HedgingHandlerTestSuite) TestCreateHedgingPosition_BindingRejectsUnknownType() {
	reqBody := validPositionBody()
	reqBody.Type = "collar"

	w := suite.performJSON(http.MethodPost, "/api/v1/hedging-positions", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockHedging.AssertNotCalled(suite.T(), "CreateHedgingPosition")
}

func (suite *HedgingHandlerTestSuite) TestCreateHedgingPosition_ValidationErrorMapsTo400() {
	reqBody := validPositionBody()

	suite.mockHedging.On("CreateHedgingPosition", mock.Anything, reqBody, "tester").
		Return(nil, apperrors.NewValidationError("currency code must be 3 letters")).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/hedging-positions", reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockHedging.AssertExpectations(suite.T())
}

func (suite *HedgingHandlerTestSuite) TestListHedgingPositions_CurrencyQuery() {
	expected := []domain.HedgingPosition{{PositionID: "pos_1", CurrencyCode: "USD"}}

	suite.mockHedging.On("ListHedgingPositions", mock.Anything, domain.PositionFilter{CurrencyCode: "USD"}).
		Return(expected, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/hedging-positions?currency=USD", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.HedgingPositionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("pos_1", resp[0].PositionID)
	suite.mockHedging.AssertExpectations(suite.T())
}

func TestHedgingHandler(t *testing.T) {
	suite.Run(t, new(HedgingHandlerTestSuite))
}
