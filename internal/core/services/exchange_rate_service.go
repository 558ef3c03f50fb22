package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
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

var one = decimal.NewFromInt(1)

// ExchangeRateService owns the rate store, rate resolution and currency
// conversion. Resolution follows a strict fallback order: most recent direct
// rate, then the reciprocal of the most recent reverse rate, then failure.
// It never averages, interpolates or consults unrelated pairs.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	auditEmitter
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, audit ports.AuditRecorder, logger *slog.Logger) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:     rateRepo,
		auditEmitter: newAuditEmitter(audit, logger),
	}
}

// CreateExchangeRate validates and stores a single dated rate, then emits an
// EXCHANGE_RATE_SET audit event. Same-currency rows are permitted; conversion
// never consults them because identity conversions short-circuit.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	rate, err := buildRate(req, creatorUserID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, *rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	metrics.RatesCreatedTotal.Inc()
	s.recordAudit(ctx, domain.AuditExchangeRateSet, rate)
	return rate, nil
}

// ImportExchangeRates stores a batch of rates all-or-nothing: every record is
// validated before any is written, and a single bad record aborts the whole
// import. Returns the number of records inserted.
func (s *ExchangeRateService) ImportExchangeRates(ctx context.Context, req dto.ImportExchangeRatesRequest, creatorUserID string) (int, error) {
	if len(req.Rates) == 0 {
		return 0, apperrors.NewValidationError("import contains no rates")
	}

	now := time.Now()
	rates := make([]domain.ExchangeRate, 0, len(req.Rates))
	for i, item := range req.Rates {
		rate, err := buildRate(item, creatorUserID, now)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
		if rate.Provider == "" {
			rate.Provider = "import"
		}
		rates = append(rates, *rate)
	}

	if err := s.rateRepo.SaveExchangeRates(ctx, rates); err != nil {
		return 0, fmt.Errorf("failed to import exchange rates: %w", err)
	}

	metrics.RatesCreatedTotal.Add(float64(len(rates)))
	for i := range rates {
		s.recordAudit(ctx, domain.AuditExchangeRateSet, &rates[i])
	}
	return len(rates), nil
}

// ListExchangeRates returns stored rates matching the filter, ordered by rate
// date descending with ties broken newest-insert-first.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, filter domain.RateFilter) ([]domain.ExchangeRate, error) {
	filter.FromCurrencyCode = strings.ToUpper(strings.TrimSpace(filter.FromCurrencyCode))
	filter.ToCurrencyCode = strings.ToUpper(strings.TrimSpace(filter.ToCurrencyCode))

	rates, err := s.rateRepo.ListExchangeRates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// GetLatestRate resolves the applicable rate for a currency pair. The most
// recent direct row wins; failing that, the reciprocal of the most recent
// reverse row is returned flagged as inverted; failing both, the call fails
// with a RateNotFoundError carrying the pair.
func (s *ExchangeRateService) GetLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	from, to, err := normalizePair(fromCurrencyCode, toCurrencyCode)
	if err != nil {
		return nil, err
	}

	if from == to {
		// Synthetic 1:1 rate with no persisted identity.
		return &domain.ExchangeRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             one,
			RateDate:         time.Now().Truncate(24 * time.Hour),
		}, nil
	}

	direct, err := s.rateRepo.FindLatestRate(ctx, from, to)
	if err == nil {
		return direct, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve rate for %s/%s: %w", from, to, err)
	}

	reverse, revErr := s.rateRepo.FindLatestRate(ctx, to, from)
	if revErr != nil {
		if errors.Is(revErr, apperrors.ErrNotFound) {
			return nil, apperrors.NewRateNotFoundError(from, to)
		}
		return nil, fmt.Errorf("failed to resolve reverse rate for %s/%s: %w", from, to, revErr)
	}

	inverted := *reverse
	inverted.FromCurrencyCode = from
	inverted.ToCurrencyCode = to
	inverted.Rate = one.Div(reverse.Rate)
	inverted.Inverted = true
	return &inverted, nil
}

// Convert converts a monetary amount between two currencies. Identity
// conversions are a pure pass-through at rate 1 and never touch the rate
// store.
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string) (*domain.Conversion, error) {
	from, to, err := normalizePair(fromCurrencyCode, toCurrencyCode)
	if err != nil {
		return nil, err
	}

	if from == to {
		metrics.ConversionsTotal.WithLabelValues("identity").Inc()
		return &domain.Conversion{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			FromAmount:       amount,
			ToAmount:         amount,
			Rate:             one,
		}, nil
	}

	rate, err := s.GetLatestRate(ctx, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.ConversionsTotal.WithLabelValues("miss").Inc()
		}
		return nil, err
	}

	kind := "direct"
	if rate.Inverted {
		kind = "inverted"
	}
	metrics.ConversionsTotal.WithLabelValues(kind).Inc()

	return &domain.Conversion{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		FromAmount:       amount,
		ToAmount:         amount.Mul(rate.Rate),
		Rate:             rate.Rate,
		RateDate:         rate.RateDate,
	}, nil
}

// ExportRates renders the full rate set for download in store-return order
// (most recent first). Supported formats: csv (default) and json.
func (s *ExchangeRateService) ExportRates(ctx context.Context, format string) (*domain.RateExport, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, domain.RateFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load rates for export: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "csv":
		data, err := renderRatesCSV(rates)
		if err != nil {
			return nil, fmt.Errorf("failed to render CSV export: %w", err)
		}
		return &domain.RateExport{
			ContentType: "text/csv; charset=utf-8",
			Filename:    "exchange_rates.csv",
			Data:        data,
		}, nil
	case "json":
		data, err := json.MarshalIndent(dto.ToListExchangeRateResponse(rates), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render JSON export: %w", err)
		}
		return &domain.RateExport{
			ContentType: "application/json",
			Filename:    "exchange_rates.json",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}
}

func renderRatesCSV(rates []domain.ExchangeRate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"exchangeRateID", "fromCurrency", "toCurrency", "rate", "date", "provider", "createdAt", "createdBy"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range rates {
		r := &rates[i]
		record := []string{
			r.ExchangeRateID,
			r.FromCurrencyCode,
			r.ToCurrencyCode,
			r.Rate.String(),
			r.RateDate.Format(domain.RateDateLayout),
			r.Provider,
			r.CreatedAt.Format(time.RFC3339),
			r.CreatedBy,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildRate validates a create request and materialises the domain record.
// Shared by single create and bulk import so both paths validate identically.
func buildRate(req dto.CreateExchangeRateRequest, creatorUserID string, now time.Time) (*domain.ExchangeRate, error) {
	from, to, err := normalizePair(req.FromCurrency, req.ToCurrency)
	if err != nil {
		return nil, err
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	rateDate, err := time.Parse(domain.RateDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	return &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		RateDate:         rateDate,
		Provider:         strings.TrimSpace(req.Provider),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
		},
	}, nil
}

func normalizePair(fromCurrencyCode, toCurrencyCode string) (string, string, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrencyCode))
	to := strings.ToUpper(strings.TrimSpace(toCurrencyCode))
	if len(from) != 3 || len(to) != 3 {
		return "", "", fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	return from, to, nil
}
