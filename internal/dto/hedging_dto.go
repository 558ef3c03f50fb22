package dto

import (
	"time"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateHedgingPositionRequest defines the structure for creating a new
// hedging position. UnrealizedPnL is caller-computed and may be negative or
// zero, so it carries no positivity binding.
type CreateHedgingPositionRequest struct {
	Currency      string          `json:"currency" binding:"required,len=3,uppercase"`
	Type          string          `json:"type" binding:"required,oneof=forward option swap"`
	Amount        decimal.Decimal `json:"amount" binding:"required,dgt0"`
	StrikeRate    decimal.Decimal `json:"strikeRate" binding:"required,dgt0"`
	CurrentRate   decimal.Decimal `json:"currentRate" binding:"required,dgt0"`
	MaturityDate  string          `json:"maturityDate" binding:"required,datetime=2006-01-02"`
	UnrealizedPnL decimal.Decimal `json:"unrealizedPnL"`
	Status        string          `json:"status" binding:"required,oneof=active expired exercised"`
}

// HedgingPositionResponse defines the structure for API responses containing
// hedging position details.
type HedgingPositionResponse struct {
	PositionID    string          `json:"positionID"`
	Currency      string          `json:"currency"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	StrikeRate    decimal.Decimal `json:"strikeRate"`
	CurrentRate   decimal.Decimal `json:"currentRate"`
	MaturityDate  string          `json:"maturityDate"`
	UnrealizedPnL decimal.Decimal `json:"unrealizedPnL"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
	CreatedBy     string          `json:"createdBy,omitempty"`
}

// ToHedgingPositionResponse converts a domain.HedgingPosition to its response DTO.
func ToHedgingPositionResponse(position *domain.HedgingPosition) HedgingPositionResponse {
	return HedgingPositionResponse{
		PositionID:    position.PositionID,
		Currency:      position.CurrencyCode,
		Type:          string(position.Type),
		Amount:        position.Amount,
		StrikeRate:    position.StrikeRate,
		CurrentRate:   position.CurrentRate,
		MaturityDate:  position.MaturityDate.Format(domain.RateDateLayout),
		UnrealizedPnL: position.UnrealizedPnL,
		Status:        string(position.Status),
		CreatedAt:     position.CreatedAt,
		CreatedBy:     position.CreatedBy,
	}
}

// ToListHedgingPositionResponse converts a slice of domain.HedgingPosition to
// response DTOs.
func ToListHedgingPositionResponse(positions []domain.HedgingPosition) []HedgingPositionResponse {
	responses := make([]HedgingPositionResponse, len(positions))
	for i := range positions {
		responses[i] = ToHedgingPositionResponse(&positions[i])
	}
	return responses
}
