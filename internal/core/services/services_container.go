package services

import (
	"log/slog"

	"github.com/fintrellis/fx_engine_app/internal/core/ports"
	portsrepo "github.com/fintrellis/fx_engine_app/internal/core/ports/repositories"
	portssvc "github.com/fintrellis/fx_engine_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the provided repositories
// and audit recorder.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, audit ports.AuditRecorder, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ExchangeRate: NewExchangeRateService(repos.ExchangeRate, audit, logger),
		Hedging:      NewHedgingService(repos.Hedging, audit, logger),
	}
}
