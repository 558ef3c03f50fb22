package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/fintrellis/fx_engine_app/internal/core/ports"
)

// auditEmitter is embedded by services that emit audit events on writes.
// Auditing is best-effort logging, not a transaction participant: a recorder
// failure is logged and never propagated to the originating call.
type auditEmitter struct {
	audit  ports.AuditRecorder
	logger *slog.Logger
}

func newAuditEmitter(audit ports.AuditRecorder, logger *slog.Logger) auditEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return auditEmitter{audit: audit, logger: logger}
}

func (e *auditEmitter) recordAudit(ctx context.Context, action domain.AuditAction, payload any) {
	if e.audit == nil {
		return
	}

	event := domain.AuditEvent{
		Action:     action,
		Payload:    payload,
		OccurredAt: time.Now(),
	}
	if err := e.audit.Record(ctx, event); err != nil {
		e.logger.Warn("failed to record audit event",
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
		)
	}
}
