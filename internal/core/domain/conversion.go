package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is the result of converting a monetary amount between two
// currencies. RateDate is zero for identity conversions, which never consult
// the rate store.
type Conversion struct {
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	FromAmount       decimal.Decimal `json:"fromAmount"`
	ToAmount         decimal.Decimal `json:"toAmount"`
	Rate             decimal.Decimal `json:"rate"`
	RateDate         time.Time       `json:"rateDate,omitzero"`
}
