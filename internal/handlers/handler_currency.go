package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves a page of currencies, optionally filtered by name
// @Tags currencies
// @Produce  json
// @Param   search query string false "Case-insensitive name filter"
// @Param   page query int false "Page number" minimum(1)
// @Param   per_page query int false "Page size (default 15, max 100)" minimum(1)
// @Success 200 {object} dto.Response{data=[]dto.CurrencyResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	page, err := h.currencyService.ListCurrencies(c.Request.Context(), params.ToListFilter())
	if err != nil {
		respondError(c, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(page.Items)), slog.Int("total", page.Total))
	respondPage(c, "Currencies retrieved successfully", dto.ToListCurrencyResponse(page.Items), dto.ToPageMeta(page))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Retrieves a single currency by id
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.Response{data=dto.CurrencyResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Currency not found")
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve currency")
		return
	}

	respondSuccess(c, "Currency retrieved successfully", dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a currency
// @Description Adds a currency with its exchange rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.Response{data=dto.CurrencyResponse}
// @Failure 400 {object} dto.Response "Malformed body"
// @Failure 401 {object} dto.MessageResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response "Error creating currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create currency", slog.String("symbol", req.Symbol))
	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error creating currency")
		return
	}

	respondCreated(c, "Currency created successfully", dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a partial update; at least one of name, symbol or exchange_rate is required
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=dto.CurrencyResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Currency not found")
		return
	}

	var req dto.UpdateCurrencyRequest
	if !bindJSON(c, &req) {
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Error updating currency")
		return
	}

	respondSuccess(c, "Currency updated successfully", dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency that no product or price refers to
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response "Currency is in use"
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Currency not found")
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error deleting currency")
		return
	}

	respondSuccess(c, "Currency deleted successfully", nil)
}
