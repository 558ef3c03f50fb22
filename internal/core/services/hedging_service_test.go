package services_test

import (
	"context"
	"testing"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	portssvc "github.com/fintrellis/fx_engine_app/internal/core/ports/services"
	"github.com/fintrellis/fx_engine_app/internal/core/services"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock HedgingPositionRepository ---
type MockHedgingPositionRepository struct {
	mock.Mock
}

func (m *MockHedgingPositionRepository) SaveHedgingPosition(ctx context.Context, position domain.HedgingPosition) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockHedgingPositionRepository) ListHedgingPositions(ctx context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HedgingPosition), args.Error(1)
}

// --- Test Suite ---
type HedgingServiceTestSuite struct {
	suite.Suite
	mockPositionRepo *MockHedgingPositionRepository
	mockAudit        *MockAuditRecorder
	service          portssvc.HedgingSvcFacade
}

func (suite *HedgingServiceTestSuite) SetupTest() {
	suite.mockPositionRepo = new(MockHedgingPositionRepository)
	suite.mockAudit = new(MockAuditRecorder)
	suite.service = services.NewHedgingService(suite.mockPositionRepo, suite.mockAudit, discardLogger())
}

func validPositionRequest() dto.CreateHedgingPositionRequest {
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

// --- Test Cases ---

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validPositionRequest()

	suite.mockPositionRepo.On("SaveHedgingPosition", ctx, mock.AnythingOfType("domain.HedgingPosition")).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, mock.MatchedBy(func(event domain.AuditEvent) bool {
		return event.Action == domain.AuditHedgingPositionCreated
	})).Return(nil).Once()

	position, err := suite.service.CreateHedgingPosition(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(position)
	suite.NotEmpty(position.PositionID)
	suite.Equal("USD", position.CurrencyCode)
	suite.Equal(domain.PositionForward, position.Type)
	suite.Equal(domain.PositionActive, position.Status)
	suite.True(position.UnrealizedPnL.Equal(req.UnrealizedPnL))
	suite.Equal("2025-12-31", position.MaturityDate.Format(domain.RateDateLayout))
	suite.Equal(creatorUserID, position.CreatedBy)

	suite.mockPositionRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_NegativePnLAllowed() {
	ctx := context.Background()
	req := validPositionRequest()
	req.UnrealizedPnL = decimal.NewFromFloat(-9999.99)

	suite.mockPositionRepo.On("SaveHedgingPosition", ctx, mock.AnythingOfType("domain.HedgingPosition")).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, mock.AnythingOfType("domain.AuditEvent")).Return(nil).Once()

	position, err := suite.service.CreateHedgingPosition(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.True(position.UnrealizedPnL.IsNegative())
}

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_InvalidAmount() {
	ctx := context.Background()
	req := validPositionRequest()
	req.Amount = decimal.Zero

	position, err := suite.service.CreateHedgingPosition(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(position)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
	suite.mockPositionRepo.AssertNotCalled(suite.T(), "SaveHedgingPosition")
}

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_UnknownType() {
	ctx := context.Background()
	req := validPositionRequest()
	req.Type = "collar"

	position, err := suite.service.CreateHedgingPosition(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(position)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "position type")
	suite.mockPositionRepo.AssertNotCalled(suite.T(), "SaveHedgingPosition")
}

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_UnknownStatus() {
	ctx := context.Background()
	req := validPositionRequest()
	req.Status = "settled"

	position, err := suite.service.CreateHedgingPosition(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(position)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "position status")
	suite.mockPositionRepo.AssertNotCalled(suite.T(), "SaveHedgingPosition")
}

func (suite *HedgingServiceTestSuite) TestCreateHedgingPosition_InvalidCurrency() {
	ctx := context.Background()
	req := validPositionRequest()
	req.Currency = "US"

	position, err := suite.service.CreateHedgingPosition(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(position)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HedgingServiceTestSuite) TestListHedgingPositions_NormalizesFilter() {
	ctx := context.Background()
	expected := []domain.HedgingPosition{{PositionID: "pos_1", CurrencyCode: "USD"}}

	suite.mockPositionRepo.On("ListHedgingPositions", ctx, domain.PositionFilter{CurrencyCode: "USD"}).
		Return(expected, nil).Once()

	positions, err := suite.service.ListHedgingPositions(ctx, domain.PositionFilter{CurrencyCode: "usd"})

	suite.Require().NoError(err)
	suite.Equal(expected, positions)
	suite.mockPositionRepo.AssertExpectations(suite.T())
}

func TestNewHedgingService(t *testing.T) {
	mockPositionRepo := new(MockHedgingPositionRepository)
	mockAudit := new(MockAuditRecorder)

	service := services.NewHedgingService(mockPositionRepo, mockAudit, discardLogger())

	assert.NotNil(t, service)
	var _ portssvc.HedgingSvcFacade = service
}

func TestHedgingService(t *testing.T) {
	suite.Run(t, new(HedgingServiceTestSuite))
}
