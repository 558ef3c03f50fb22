package ports

import (
	"context"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

// AuditRecorder receives a write-event whenever an exchange rate or hedging
// position is created. Recording is best-effort from the core's perspective:
// a failure to record must never fail the originating operation.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
