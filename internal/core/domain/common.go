package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Rates and positions are immutable once created, so there are no
// last-updated fields.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
