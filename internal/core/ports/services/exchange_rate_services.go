package services

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade exposes the full rate-engine surface to the transport
// layer: store writes, filtered reads, resolution, conversion and export.
type ExchangeRateSvcFacade interface {
	// CreateExchangeRate validates and stores a single dated rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// ImportExchangeRates stores a batch all-or-nothing and returns the
	// number of records inserted.
	ImportExchangeRates(ctx context.Context, req dto.ImportExchangeRatesRequest, creatorUserID string) (int, error)

	// ListExchangeRates returns stored rates matching the filter, most
	// recent first.
	ListExchangeRates(ctx context.Context, filter domain.RateFilter) ([]domain.ExchangeRate, error)

	// GetLatestRate resolves the applicable rate for a pair, falling back to
	// the reciprocal of the reverse pair when no direct rate exists.
	GetLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// Convert converts amount from one currency to another.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string) (*domain.Conversion, error)

	// ExportRates renders the full rate set in the requested format.
	ExportRates(ctx context.Context, format string) (*domain.RateExport, error)
}
