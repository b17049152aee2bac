package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type productHandler struct {
	productService      portssvc.ProductSvcFacade
	productPriceService portssvc.ProductPriceSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade, pps portssvc.ProductPriceSvcFacade) *productHandler {
	return &productHandler{
		productService:      ps,
		productPriceService: pps,
	}
}

// registerProductRoutes registers the product catalog and the nested price ledger routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, productPriceService portssvc.ProductPriceSvcFacade) {
	h := newProductHandler(productService, productPriceService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)

		products.GET("/:id/prices", h.listProductPrices)
		products.POST("/:id/prices", h.createProductPrice)
	}
}

// listProducts godoc
// @Summary List products
// @Description Retrieves a page of products, optionally filtered by name
// @Tags products
// @Produce  json
// @Param   search query string false "Case-insensitive name filter"
// @Param   page query int false "Page number" minimum(1)
// @Param   per_page query int false "Page size (default 15, max 100)" minimum(1)
// @Success 200 {object} dto.Response{data=[]dto.ProductResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	page, err := h.productService.ListProducts(c.Request.Context(), params.ToListFilter())
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}

	logger.Info("Products listed successfully", slog.Int("count", len(page.Items)), slog.Int("total", page.Total))
	respondPage(c, "Products retrieved successfully", dto.ToListProductResponse(page.Items), dto.ToPageMeta(page))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.Response{data=dto.ProductResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	respondSuccess(c, "Product retrieved successfully", dto.ToProductResponse(product))
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a product; currency_id, when given, must name an existing currency
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.Response{data=dto.ProductResponse}
// @Failure 400 {object} dto.Response "Malformed body"
// @Failure 401 {object} dto.MessageResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response "Error creating product"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	logger.Info("Received request to create product", slog.String("name", req.Name))
	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error creating product")
		return
	}

	respondCreated(c, "Product created successfully", dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Applies a partial update to name, price and description
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path int true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=dto.ProductResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Product not found")
		return
	}

	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Error updating product")
		return
	}

	respondSuccess(c, "Product updated successfully", dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product together with its prices
// @Tags products
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error deleting product")
		return
	}

	respondSuccess(c, "Product deleted successfully", nil)
}

// listProductPrices godoc
// @Summary List prices of a product
// @Description Returns every price recorded for the product in creation order, each with its currency
// @Tags prices
// @Produce  json
// @Param   id path int true "Product ID"
// @Success 200 {object} dto.Response{data=[]dto.ProductPriceResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /products/{id}/prices [get]
func (h *productHandler) listProductPrices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Product not found")
		return
	}

	prices, err := h.productPriceService.ListProductPrices(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to list product prices")
		return
	}

	respondSuccess(c, "Product prices retrieved successfully", dto.ToListProductPriceResponse(prices))
}

// createProductPrice godoc
// @Summary Add a price to a product
// @Description Records a price in a currency. currency_id defaults to the product's currency.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   id path int true "Product ID"
// @Param   price body dto.CreateProductPriceRequest true "Price details"
// @Success 201 {object} dto.Response{data=dto.ProductPriceResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.Response "Product not found"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /products/{id}/prices [post]
func (h *productHandler) createProductPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseID(c, "id")
	if !ok {
		respondFailure(c, http.StatusNotFound, "Product not found")
		return
	}

	var req dto.CreateProductPriceRequest
	if !bindJSON(c, &req) {
		return
	}

	logger = logger.With(slog.Int64("product_id", id))
	logger.Info("Received request to create product price")

	price, err := h.productPriceService.CreateProductPrice(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Error creating product price")
		return
	}

	respondCreated(c, "Product price created successfully", dto.ToProductPriceResponse(price))
}
