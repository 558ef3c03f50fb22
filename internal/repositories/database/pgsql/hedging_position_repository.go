package pgsql

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const hedgingPositionColumns = `position_id, currency_code, position_type, amount, strike_rate, current_rate, maturity_date, unrealized_pnl, status, created_at, created_by`

// PgxHedgingPositionRepository implements the hedging repository facade using
// pgxpool.
type PgxHedgingPositionRepository struct {
	BaseRepository
}

// NewPgxHedgingPositionRepository creates a new PgxHedgingPositionRepository.
func NewPgxHedgingPositionRepository(db *pgxpool.Pool) *PgxHedgingPositionRepository {
	return &PgxHedgingPositionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveHedgingPosition inserts a single position row.
func (r *PgxHedgingPositionRepository) SaveHedgingPosition(ctx context.Context, position domain.HedgingPosition) error {
	query := `
		INSERT INTO hedging_positions (
			position_id, currency_code, position_type, amount, strike_rate,
			current_rate, maturity_date, unrealized_pnl, status, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.Pool.Exec(ctx, query,
		position.PositionID, position.CurrencyCode, string(position.Type),
		position.Amount, position.StrikeRate, position.CurrentRate,
		position.MaturityDate, position.UnrealizedPnL, string(position.Status),
		position.CreatedAt, position.CreatedBy,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to save hedging position", err)
	}
	return nil
}

// ListHedgingPositions returns positions matching the filter in insertion
// order.
func (r *PgxHedgingPositionRepository) ListHedgingPositions(ctx context.Context, filter domain.PositionFilter) ([]domain.HedgingPosition, error) {
	query := `SELECT ` + hedgingPositionColumns + ` FROM hedging_positions`
	args := []any{}
	if filter.CurrencyCode != "" {
		query += " WHERE currency_code = $1"
		args = append(args, filter.CurrencyCode)
	}
	query += " ORDER BY seq ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list hedging positions", err)
	}
	defer rows.Close()

	positions := []domain.HedgingPosition{}
	for rows.Next() {
		var position domain.HedgingPosition
		err := rows.Scan(
			&position.PositionID, &position.CurrencyCode, &position.Type,
			&position.Amount, &position.StrikeRate, &position.CurrentRate,
			&position.MaturityDate, &position.UnrealizedPnL, &position.Status,
			&position.CreatedAt, &position.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan hedging position", err)
		}
		positions = append(positions, position)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating hedging positions", err)
	}

	return positions, nil
}
