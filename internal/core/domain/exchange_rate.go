package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateDateLayout is the calendar-date format used for rate and maturity dates.
const RateDateLayout = "2006-01-02"

// ExchangeRate stores the conversion rate between two currencies effective on
// a specific date: Rate is units of ToCurrencyCode per one unit of
// FromCurrencyCode. Multiple dated rows for the same pair coexist; the current
// rate for a pair is the most recent row, never an overwrite.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"date"`
	Provider         string          `json:"provider,omitempty"`
	// Inverted marks a rate derived by taking the reciprocal of a stored
	// reverse-pair row. An inverted rate has no persisted row of its own in
	// the requested direction.
	Inverted bool `json:"inverted,omitempty"`
	AuditFields
}

// RateFilter narrows ListExchangeRates results. Zero-valued fields are
// ignored; set fields combine with AND semantics. Date bounds are inclusive.
type RateFilter struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	DateFrom         time.Time
	DateTo           time.Time
}

// RateExport is a rendered rate table ready for download.
type RateExport struct {
	ContentType string
	Filename    string
	Data        []byte
}
