package dto

import (
	"time"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
// The dgt0 binding is a custom validation registered in the handlers package
// (DecimalGreaterThanZero).
type CreateExchangeRateRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,uppercase"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,uppercase"`
	Rate         decimal.Decimal `json:"rate" binding:"required,dgt0"`
	Date         string          `json:"date" binding:"required,datetime=2006-01-02"`
	Provider     string          `json:"provider" binding:"omitempty,max=64"`
}

// ImportExchangeRatesRequest carries a batch of rates for bulk insertion.
// The batch is applied all-or-nothing.
type ImportExchangeRatesRequest struct {
	Rates []CreateExchangeRateRequest `json:"rates" binding:"required,min=1,dive"`
}

// ImportExchangeRatesResponse reports the number of records inserted.
type ImportExchangeRatesResponse struct {
	Imported int `json:"imported"`
}

// ConvertRequest defines the structure for a currency conversion call.
type ConvertRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,uppercase"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing
// exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID,omitempty"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	Date           string          `json:"date"`
	Provider       string          `json:"provider,omitempty"`
	Inverted       bool            `json:"inverted,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitzero"`
	CreatedBy      string          `json:"createdBy,omitempty"`
}

// ConversionResponse defines the structure for conversion results.
type ConversionResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	Rate         decimal.Decimal `json:"rate"`
	RateDate     string          `json:"rateDate,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrency:   rate.FromCurrencyCode,
		ToCurrency:     rate.ToCurrencyCode,
		Rate:           rate.Rate,
		Date:           rate.RateDate.Format(domain.RateDateLayout),
		Provider:       rate.Provider,
		Inverted:       rate.Inverted,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to
// response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToConversionResponse converts a domain.Conversion to its response DTO.
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	resp := ConversionResponse{
		FromCurrency: conv.FromCurrencyCode,
		ToCurrency:   conv.ToCurrencyCode,
		FromAmount:   conv.FromAmount,
		ToAmount:     conv.ToAmount,
		Rate:         conv.Rate,
	}
	if !conv.RateDate.IsZero() {
		resp.RateDate = conv.RateDate.Format(domain.RateDateLayout)
	}
	return resp
}
