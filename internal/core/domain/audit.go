package domain

import "time"

// AuditAction identifies the mutating operation an audit event records.
type AuditAction string

const (
	AuditExchangeRateSet        AuditAction = "EXCHANGE_RATE_SET"
	AuditHedgingPositionCreated AuditAction = "HEDGING_POSITION_CREATED"
)

// AuditEvent records the fact that a mutating operation occurred. It is
// consumed by an external recorder and never persisted by the core itself.
type AuditEvent struct {
	Action     AuditAction `json:"action"`
	Payload    any         `json:"payload"`
	OccurredAt time.Time   `json:"occurredAt"`
}
