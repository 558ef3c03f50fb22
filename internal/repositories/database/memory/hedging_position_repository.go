package memory

import (
	"context"
	"sync"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

// HedgingPositionRepository is an in-memory hedging-position store preserving
// insertion order. Each instance is independent.
type HedgingPositionRepository struct {
	mu        sync.RWMutex
	positions []domain.HedgingPosition
}

// NewHedgingPositionRepository creates an empty in-memory position store.
func NewHedgingPositionRepository() *HedgingPositionRepository {
	return &HedgingPositionRepository{}
}

// SaveHedgingPosition appends a position.
func (r *HedgingPositionRepository) SaveHedgingPosition(_ context.Context, position domain.HedgingPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, position)
	return nil
}

// ListHedgingPositions returns copies of the matching positions in insertion
// order.
func (r *HedgingPositionRepository) ListHedgingPositions(_ context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := []domain.HedgingPosition{}
	for _, position := range r.positions {
		if filter.CurrencyCode != "" && position.CurrencyCode != filter.CurrencyCode {
			continue
		}
		positions = append(positions, position)
	}
	return positions, nil
}
