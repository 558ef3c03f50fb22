package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
)

// SlogRecorder writes audit events to the structured application log. It is
// the default recorder when no external audit sink is configured.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a SlogRecorder. A nil logger falls back to
// slog.Default().
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogRecorder{logger: logger}
}

// Record logs the event as a single structured line.
func (r *SlogRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	r.logger.InfoContext(ctx, "audit event",
		slog.String("action", string(event.Action)),
		slog.Time("occurred_at", event.OccurredAt),
		slog.String("payload", string(payload)),
	)
	return nil
}
