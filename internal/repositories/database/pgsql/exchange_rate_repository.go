package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, rate_date, provider, created_at, created_by`

const insertExchangeRateSQL = `
	INSERT INTO exchange_rates (
		exchange_rate_id, from_currency_code, to_currency_code, rate, rate_date,
		provider, created_at, created_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// PgxExchangeRateRepository implements the exchange-rate repository facade
// using pgxpool. Rows are append-only; the seq column records insertion order
// and breaks ties between rows sharing a rate date.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveExchangeRate inserts a single rate row.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	_, err := r.Pool.Exec(ctx, insertExchangeRateSQL,
		rate.ExchangeRateID, rate.FromCurrencyCode, rate.ToCurrencyCode,
		rate.Rate, rate.RateDate, rate.Provider, rate.CreatedAt, rate.CreatedBy,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to save exchange rate", err)
	}
	return nil
}

// SaveExchangeRates inserts the batch in a single transaction so either every
// record becomes visible or none do.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for i := range rates {
		rate := &rates[i]
		_, err := tx.Exec(ctx, insertExchangeRateSQL,
			rate.ExchangeRateID, rate.FromCurrencyCode, rate.ToCurrencyCode,
			rate.Rate, rate.RateDate, rate.Provider, rate.CreatedAt, rate.CreatedBy,
		)
		if err != nil {
			return apperrors.NewStorageError("failed to save exchange rate batch", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindLatestRate returns the most recent rate stored for the exact (from, to)
// direction. Ties on rate date resolve to the newest insert.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY rate_date DESC, seq DESC
		LIMIT 1;
	`

	var rate domain.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode).Scan(
		&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode,
		&rate.Rate, &rate.RateDate, &rate.Provider, &rate.CreatedAt, &rate.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate stored for pair " + fromCurrencyCode + " to " + toCurrencyCode)
		}
		return nil, apperrors.NewStorageError("failed to find latest exchange rate", err)
	}

	return &rate, nil
}

// ListExchangeRates returns rates matching the filter, ordered by rate date
// descending with ties broken newest-insert-first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.RateFilter) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filter.FromCurrencyCode != "" {
		query += fmt.Sprintf(" AND from_currency_code = $%d", argNum)
		args = append(args, filter.FromCurrencyCode)
		argNum++
	}
	if filter.ToCurrencyCode != "" {
		query += fmt.Sprintf(" AND to_currency_code = $%d", argNum)
		args = append(args, filter.ToCurrencyCode)
		argNum++
	}
	if !filter.DateFrom.IsZero() {
		query += fmt.Sprintf(" AND rate_date >= $%d", argNum)
		args = append(args, filter.DateFrom)
		argNum++
	}
	if !filter.DateTo.IsZero() {
		query += fmt.Sprintf(" AND rate_date <= $%d", argNum)
		args = append(args, filter.DateTo)
		argNum++
	}

	query += " ORDER BY rate_date DESC, seq DESC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var rate domain.ExchangeRate
		err := rows.Scan(
			&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode,
			&rate.Rate, &rate.RateDate, &rate.Provider, &rate.CreatedAt, &rate.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan exchange rate", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating exchange rates", err)
	}

	return rates, nil
}
