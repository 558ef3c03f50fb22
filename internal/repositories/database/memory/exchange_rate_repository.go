package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

type rateRow struct {
	rate domain.ExchangeRate
	seq  uint64
}

// ExchangeRateRepository is an in-memory rate store with the same ordering
// semantics as the pgsql implementation: rate date descending, ties broken
// newest-insert-first. Each instance is an independent store, so tenants and
// tests stay isolated; there is no package-level state.
type ExchangeRateRepository struct {
	mu      sync.RWMutex
	rows    []rateRow
	nextSeq uint64
}

// NewExchangeRateRepository creates an empty in-memory rate store.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{}
}

// SaveExchangeRate appends a single rate row.
func (r *ExchangeRateRepository) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.append(rate)
	return nil
}

// SaveExchangeRates appends the batch under one lock, so concurrent readers
// observe either none or all of it.
func (r *ExchangeRateRepository) SaveExchangeRates(_ context.Context, rates []domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range rates {
		r.append(rates[i])
	}
	return nil
}

// append assumes the write lock is held.
func (r *ExchangeRateRepository) append(rate domain.ExchangeRate) {
	r.nextSeq++
	r.rows = append(r.rows, rateRow{rate: rate, seq: r.nextSeq})
}

// FindLatestRate returns the most recent rate stored for the exact (from, to)
// direction; ties on rate date resolve to the newest insert.
func (r *ExchangeRateRepository) FindLatestRate(_ context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *rateRow
	for i := range r.rows {
		row := &r.rows[i]
		if row.rate.FromCurrencyCode != fromCurrencyCode || row.rate.ToCurrencyCode != toCurrencyCode {
			continue
		}
		if best == nil || row.rate.RateDate.After(best.rate.RateDate) ||
			(row.rate.RateDate.Equal(best.rate.RateDate) && row.seq > best.seq) {
			best = row
		}
	}
	if best == nil {
		return nil, apperrors.NewNotFoundError("no rate stored for pair " + fromCurrencyCode + " to " + toCurrencyCode)
	}

	rate := best.rate
	return &rate, nil
}

// ListExchangeRates returns copies of the matching rows, ordered by rate date
// descending with ties broken newest-insert-first.
func (r *ExchangeRateRepository) ListExchangeRates(_ context.Context, filter domain.RateFilter) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]rateRow, 0, len(r.rows))
	for _, row := range r.rows {
		if matchesFilter(&row.rate, &filter) {
			matched = append(matched, row)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].rate.RateDate.Equal(matched[j].rate.RateDate) {
			return matched[i].rate.RateDate.After(matched[j].rate.RateDate)
		}
		return matched[i].seq > matched[j].seq
	})

	rates := make([]domain.ExchangeRate, len(matched))
	for i, row := range matched {
		rates[i] = row.rate
	}
	return rates, nil
}

func matchesFilter(rate *domain.ExchangeRate, filter *domain.RateFilter) bool {
	if filter.FromCurrencyCode != "" && rate.FromCurrencyCode != filter.FromCurrencyCode {
		return false
	}
	if filter.ToCurrencyCode != "" && rate.ToCurrencyCode != filter.ToCurrencyCode {
		return false
	}
	if !filter.DateFrom.IsZero() && rate.RateDate.Before(filter.DateFrom) {
		return false
	}
	if !filter.DateTo.IsZero() && rate.RateDate.After(filter.DateTo) {
		return false
	}
	return true
}
