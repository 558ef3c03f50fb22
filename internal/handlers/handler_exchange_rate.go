package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fintrellis/fx_engine_app/internal/apperrors"
	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	portssvc "github.com/fintrellis/fx_engine_app/internal/core/ports/services"
	"github.com/fintrellis/fx_engine_app/internal/dto"
	"github.com/fintrellis/fx_engine_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates and
// conversions.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.POST("/import", h.importExchangeRates)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/latest/:from/:to", h.getLatestRate)
		exchangeRates.POST("/convert", h.convert)
		exchangeRates.GET("/export", h.exportRates)
	}
}

// createExchangeRate adds a new dated exchange rate between two currencies.
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, actorFromRequest(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created",
		slog.String("rate_id", createdRate.ExchangeRateID),
		slog.String("from", createdRate.FromCurrencyCode),
		slog.String("to", createdRate.ToCurrencyCode),
	)
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// importExchangeRates bulk-inserts exchange rates, all-or-nothing.
func (h *exchangeRateHandler) importExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ImportExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for importExchangeRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	imported, err := h.exchangeRateService.ImportExchangeRates(c.Request.Context(), req, actorFromRequest(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to import exchange rates")
		return
	}

	logger.Info("Exchange rates imported", slog.Int("count", imported))
	c.JSON(http.StatusCreated, dto.ImportExchangeRatesResponse{Imported: imported})
}

// listExchangeRates returns stored rates, optionally filtered by pair side
// and inclusive date range, most recent first.
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := domain.RateFilter{
		FromCurrencyCode: c.Query("fromCurrency"),
		ToCurrencyCode:   c.Query("toCurrency"),
	}

	var err error
	if filter.DateFrom, err = parseDateQuery(c, "dateFrom"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.DateTo, err = parseDateQuery(c, "dateTo"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getLatestRate resolves the applicable rate for a currency pair.
func (h *exchangeRateHandler) getLatestRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	rate, err := h.exchangeRateService.GetLatestRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convert converts a monetary amount between two currencies.
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.exchangeRateService.Convert(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// exportRates streams the full rate set as a downloadable artifact.
func (h *exchangeRateHandler) exportRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	format := c.DefaultQuery("format", "csv")

	export, err := h.exchangeRateService.ExportRates(c.Request.Context(), format)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export exchange rates")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

// respondServiceError maps service errors to HTTP responses. A missing
// rate surfaces the currency pair so callers can branch on "need to add a
// rate" vs "bad request".
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var rateErr *apperrors.RateNotFoundError
	switch {
	case errors.As(err, &rateErr):
		logger.Warn("Exchange rate not found",
			slog.String("from", rateErr.FromCurrencyCode),
			slog.String("to", rateErr.ToCurrencyCode),
		)
		c.JSON(http.StatusNotFound, gin.H{
			"error":        rateErr.Error(),
			"fromCurrency": rateErr.FromCurrencyCode,
			"toCurrency":   rateErr.ToCurrencyCode,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(domain.RateDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return parsed, nil
}
