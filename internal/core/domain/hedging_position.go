package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionType is the kind of hedging instrument held against currency risk.
type PositionType string

const (
	PositionForward PositionType = "forward"
	PositionOption  PositionType = "option"
	PositionSwap    PositionType = "swap"
)

// Valid reports whether t is a member of the PositionType enumeration.
func (t PositionType) Valid() bool {
	switch t {
	case PositionForward, PositionOption, PositionSwap:
		return true
	}
	return false
}

// PositionStatus is the lifecycle state of a hedging position.
type PositionStatus string

const (
	PositionActive    PositionStatus = "active"
	PositionExpired   PositionStatus = "expired"
	PositionExercised PositionStatus = "exercised"
)

// Valid reports whether s is a member of the PositionStatus enumeration.
func (s PositionStatus) Valid() bool {
	switch s {
	case PositionActive, PositionExpired, PositionExercised:
		return true
	}
	return false
}

// HedgingPosition tracks a currency-risk exposure hedged by a financial
// instrument. UnrealizedPnL is supplied by the caller and stored verbatim;
// the store never recomputes it. There is no referential check that a rate
// exists for the hedged currency.
type HedgingPosition struct {
	PositionID    string          `json:"positionID"`
	CurrencyCode  string          `json:"currency"`
	Type          PositionType    `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	StrikeRate    decimal.Decimal `json:"strikeRate"`
	CurrentRate   decimal.Decimal `json:"currentRate"`
	MaturityDate  time.Time       `json:"maturityDate"`
	UnrealizedPnL decimal.Decimal `json:"unrealizedPnL"`
	Status        PositionStatus  `json:"status"`
	AuditFields
}

// PositionFilter narrows ListHedgingPositions results.
type PositionFilter struct {
	CurrencyCode string
}
