package repositories

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

// HedgingPositionReader defines read operations over stored hedging positions.
type HedgingPositionReader interface {
	// ListHedgingPositions returns positions matching the filter in stable
	// insertion order.
	ListHedgingPositions(ctx context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error)
}

// HedgingPositionWriter defines write operations for hedging positions.
type HedgingPositionWriter interface {
	SaveHedgingPosition(ctx context.Context, position domain.HedgingPosition) error
}

// HedgingRepositoryFacade combines all hedging-position repository interfaces.
type HedgingRepositoryFacade interface {
	HedgingPositionReader
	HedgingPositionWriter
}
