package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	portssvc "github.com/fintrellis/fx_engine_app/internal/core/ports/services"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/fintrellis/fx_engine_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// hedgingHandler handles HTTP requests related to hedging positions.
type hedgingHandler struct {
	hedgingService portssvc.HedgingSvcFacade
}

func newHedgingHandler(hs portssvc.HedgingSvcFacade) *hedgingHandler {
	return &hedgingHandler{
		hedgingService: hs,
	}
}

// registerHedgingRoutes registers routes related to hedging positions.
func registerHedgingRoutes(rg *gin.RouterGroup, hedgingService portssvc.HedgingSvcFacade) {
	h := newHedgingHandler(hedgingService)

	positions := rg.Group("/hedging-positions")
	{
		positions.POST("", h.createHedgingPosition)
		positions.GET("", h.listHedgingPositions)
	}
}

// createHedgingPosition adds a new hedging position to the risk ledger.
func (h *hedgingHandler) createHedgingPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateHedgingPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createHedgingPosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	position, err := h.hedgingService.CreateHedgingPosition(c.Request.Context(), req, actorFromRequest(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create hedging position")
		return
	}

	logger.Info("Hedging position created",
		slog.String("position_id", position.PositionID),
		slog.String("currency", position.CurrencyCode),
		slog.String("type", string(position.Type)),
	)
	c.JSON(http.StatusCreated, dto.ToHedgingPositionResponse(position))
}

// listHedgingPositions returns positions, optionally filtered by currency.
func (h *hedgingHandler) listHedgingPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := domain.PositionFilter{
		CurrencyCode: c.Query("currency"),
	}

	positions, err := h.hedgingService.ListHedgingPositions(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list hedging positions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListHedgingPositionResponse(positions))
}
