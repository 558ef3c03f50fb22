package memory_test

import (
	"context"
	"testing"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(id, currency string, posType domain.PositionType) domain.HedgingPosition {
	return domain.HedgingPosition{
		PositionID:   id,
		CurrencyCode: currency,
		Type:         posType,
		Amount:       decimal.NewFromInt(100000),
		StrikeRate:   decimal.NewFromFloat(600.50),
		CurrentRate:  decimal.NewFromFloat(612.25),
		MaturityDate: date("2025-12-31"),
		Status:       domain.PositionActive,
	}
}

func TestListHedgingPositions_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHedgingPositionRepository()

	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p1", "USD", domain.PositionForward)))
	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p2", "EUR", domain.PositionOption)))
	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p3", "USD", domain.PositionSwap)))

	positions, err := repo.ListHedgingPositions(ctx, domain.PositionFilter{})

	require.NoError(t, err)
	require.Len(t, positions, 3)
	assert.Equal(t, "p1", positions[0].PositionID)
	assert.Equal(t, "p2", positions[1].PositionID)
	assert.Equal(t, "p3", positions[2].PositionID)
}

func TestListHedgingPositions_CurrencyFilter(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHedgingPositionRepository()

	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p1", "USD", domain.PositionForward)))
	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p2", "EUR", domain.PositionOption)))
	require.NoError(t, repo.SaveHedgingPosition(ctx, position("p3", "USD", domain.PositionSwap)))

	positions, err := repo.ListHedgingPositions(ctx, domain.PositionFilter{CurrencyCode: "USD"})

	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "p1", positions[0].PositionID)
	assert.Equal(t, "p3", positions[1].PositionID)
}

func TestListHedgingPositions_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo := memory.NewHedgingPositionRepository()

	positions, err := repo.ListHedgingPositions(context.Background(), domain.PositionFilter{})

	require.NoError(t, err)
	assert.Empty(t, positions)
}
