package services

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/dto"
)

// HedgingSvcFacade exposes the hedging-position ledger to the transport layer.
type HedgingSvcFacade interface {
	// CreateHedgingPosition validates and stores a new position.
	CreateHedgingPosition(ctx context.Context, req dto.CreateHedgingPositionRequest, creatorUserID string) (*domain.HedgingPosition, error)

	// ListHedgingPositions returns positions matching the filter in stable
	// insertion order.
	ListHedgingPositions(ctx context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error)
}
