package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/dto"
	"github.com/adilzhm/weather_store_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles catalog CRUD. Reads are public; writes require the
// admin bearer token.
type productHandler struct {
	productService ports.ProductSvcFacade
}

func newProductHandler(ps ports.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

func registerProductRoutes(rg *gin.RouterGroup, productService ports.ProductSvcFacade, admin gin.HandlerFunc) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", admin, h.createProduct)
		products.PUT("/:id", admin, h.updateProduct)
		products.DELETE("/:id", admin, h.deleteProduct)
	}
}

func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to create product")
		return
	}

	admin, _ := middleware.GetAdminFromCtx(c.Request.Context())
	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("name", product.Name), slog.String("admin_user", admin))
	respondData(c, http.StatusCreated, dto.ToProductResponse(product))
}

func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Product not found")
			return
		}
		logger.Error("Failed to get product", slog.String("product_id", productID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to retrieve product")
		return
	}

	respondData(c, http.StatusOK, dto.ToProductResponse(product))
}

func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid query parameters: "+err.Error())
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to list products")
		return
	}

	respondData(c, http.StatusOK, dto.ToListProductResponse(products))
}

func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Not found", "Product not found")
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
		default:
			logger.Error("Failed to update product", slog.String("product_id", productID), slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal error", "Failed to update product")
		}
		return
	}

	admin, _ := middleware.GetAdminFromCtx(c.Request.Context())
	logger.Info("Product updated", slog.String("product_id", productID), slog.String("admin_user", admin))
	respondData(c, http.StatusOK, dto.ToProductResponse(product))
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.productService.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Not found", "Product not found")
			return
		}
		logger.Error("Failed to delete product", slog.String("product_id", productID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to delete product")
		return
	}

	admin, _ := middleware.GetAdminFromCtx(c.Request.Context())
	logger.Info("Product deleted", slog.String("product_id", productID), slog.String("name", product.Name), slog.String("admin_user", admin))
	respondData(c, http.StatusOK, dto.ToProductResponse(product))
}
