package handlers

import (
	portssvc "github.com/fintrellis/fx_engine_app/internal/core/ports/services"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/fintrellis/fx_engine_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerHedgingRoutes(v1, services.Hedging)
}

// registerCustomValidations wires the dgt0 binding tag (strictly positive
// shopspring decimal) into gin's validator engine.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dgt0", dto.DecimalGreaterThanZero)
	}
}

// actorFromRequest returns the acting user recorded against writes. There is
// no authentication layer; callers identify themselves via the X-Actor
// header.
func actorFromRequest(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor"); actor != "" {
		return actor
	}
	return "api"
}
