package repositories

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

// ExchangeRateReader defines read operations over stored exchange rates.
type ExchangeRateReader interface {
	// FindLatestRate returns the most recent rate stored for the exact
	// (from, to) direction. Ties on rate date resolve to the newest insert.
	// Returns an error unwrapping to apperrors.ErrNotFound when no row exists
	// for the direction; reverse-pair fallback is the resolver's job, not the
	// store's.
	FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates returns rates matching the filter, ordered by rate
	// date descending, ties broken newest-insert-first.
	ListExchangeRates(ctx context.Context, filter domain.RateFilter) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
// Rates are append-only: there is no update or delete.
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a single rate atomically.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// SaveExchangeRates persists the batch atomically: either every record
	// becomes visible or none do.
	SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository
// interfaces for clients that need the full surface.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
