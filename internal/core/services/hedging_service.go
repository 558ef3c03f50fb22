package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/core/ports"
	portsrepo "github.com/fintrellis/fx_engine_app/internal/core/ports/repositories"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/fintrellis/fx_engine_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HedgingService provides business logic for the hedging-position ledger.
// Positions are tracked independently of the rate table; the service never
// checks that a rate exists for a hedged currency.
type HedgingService struct {
	positionRepo portsrepo.HedgingRepositoryFacade
	auditEmitter
}

// NewHedgingService creates a new HedgingService.
func NewHedgingService(positionRepo portsrepo.HedgingRepositoryFacade, audit ports.AuditRecorder, logger *slog.Logger) *HedgingService {
	return &HedgingService{
		positionRepo: positionRepo,
		auditEmitter: newAuditEmitter(audit, logger),
	}
}

// CreateHedgingPosition validates and stores a new position, then emits a
// HEDGING_POSITION_CREATED audit event. UnrealizedPnL is caller-computed and
// stored verbatim; it may be negative or zero.
func (s *HedgingService) CreateHedgingPosition(ctx context.Context, req dto.CreateHedgingPositionRequest, creatorUserID string) (*domain.HedgingPosition, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: notional amount must be positive", apperrors.ErrValidation)
	}
	if req.StrikeRate.LessThanOrEqual(decimal.Zero) || req.CurrentRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: strike and current rates must be positive", apperrors.ErrValidation)
	}

	posType := domain.PositionType(req.Type)
	if !posType.Valid() {
		return nil, fmt.Errorf("%w: unknown position type %q", apperrors.ErrValidation, req.Type)
	}
	status := domain.PositionStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown position status %q", apperrors.ErrValidation, req.Status)
	}

	maturityDate, err := time.Parse(domain.RateDateLayout, req.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: maturity date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	position := domain.HedgingPosition{
		PositionID:    uuid.NewString(),
		CurrencyCode:  currency,
		Type:          posType,
		Amount:        req.Amount,
		StrikeRate:    req.StrikeRate,
		CurrentRate:   req.CurrentRate,
		MaturityDate:  maturityDate,
		UnrealizedPnL: req.UnrealizedPnL,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
			CreatedBy: creatorUserID,
		},
	}

	if err := s.positionRepo.SaveHedgingPosition(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to save hedging position: %w", err)
	}

	metrics.HedgingPositionsCreatedTotal.Inc()
	s.recordAudit(ctx, domain.AuditHedgingPositionCreated, &position)
	return &position, nil
}

// ListHedgingPositions returns positions matching the filter in stable
// insertion order.
func (s *HedgingService) ListHedgingPositions(ctx context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error) {
	filter.CurrencyCode = strings.ToUpper(strings.TrimSpace(filter.CurrencyCode))

	positions, err := s.positionRepo.ListHedgingPositions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list hedging positions: %w", err)
	}
	return positions, nil
}
