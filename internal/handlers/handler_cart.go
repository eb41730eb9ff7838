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

// sessionHeader identifies the shopper's cart across requests.
const sessionHeader = "X-Session-ID"

// cartHandler handles the session cart endpoints. Every route requires the
// session header.
type cartHandler struct {
	cartService ports.CartSvcFacade
}

func newCartHandler(cs ports.CartSvcFacade) *cartHandler {
	return &cartHandler{cartService: cs}
}

func registerCartRoutes(rg *gin.RouterGroup, cartService ports.CartSvcFacade) {
	h := newCartHandler(cartService)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.POST("/items", h.addItem)
		cart.PATCH("/items/:productId", h.updateQuantity)
		cart.DELETE("/items/:productId", h.removeItem)
		cart.DELETE("", h.clearCart)
		cart.POST("/checkout", h.checkout)
	}
}

// sessionID extracts the session header, rejecting the request when absent.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		respondError(c, http.StatusBadRequest, "Validation failed", sessionHeader+" header is required")
		return "", false
	}
	return id, true
}

func (h *cartHandler) getCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, totals := h.cartService.GetCart(c.Request.Context(), sid)
	respondData(c, http.StatusOK, dto.ToCartResponse(cart, totals))
}

func (h *cartHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	cart, totals, err := h.cartService.AddItem(c.Request.Context(), sid, req.ProductID)
	if err != nil {
		logger.Error("Failed to add cart item", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to add item to cart")
		return
	}

	respondData(c, http.StatusOK, dto.ToCartResponse(cart, totals))
}

func (h *cartHandler) updateQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", "Invalid request format: "+err.Error())
		return
	}

	cart, totals := h.cartService.UpdateQuantity(c.Request.Context(), sid, c.Param("productId"), req.Delta)
	respondData(c, http.StatusOK, dto.ToCartResponse(cart, totals))
}

func (h *cartHandler) removeItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	cart, totals := h.cartService.RemoveItem(c.Request.Context(), sid, c.Param("productId"))
	respondData(c, http.StatusOK, dto.ToCartResponse(cart, totals))
}

func (h *cartHandler) clearCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	h.cartService.ClearCart(c.Request.Context(), sid)
	cart, totals := h.cartService.GetCart(c.Request.Context(), sid)
	respondData(c, http.StatusOK, dto.ToCartResponse(cart, totals))
}

func (h *cartHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sid, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartService.Checkout(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		logger.Error("Failed to check out cart", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Internal error", "Failed to check out")
		return
	}

	logger.Info("Order placed", slog.Int("item_count", summary.ItemCount), slog.String("total", summary.Totals.TotalReference.String()))
	respondData(c, http.StatusOK, dto.ToOrderSummaryResponse(summary))
}
