package dto

import (
	"time"

	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds one unit of a product to the session cart.
type AddCartItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
}

// UpdateCartItemRequest applies a signed quantity delta to a cart entry.
// A delta that drops the quantity to zero or below removes the entry.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CartItemResponse is one cart line with derived line totals.
type CartItemResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CartResponse is the full cart view including totals in both currencies.
type CartResponse struct {
	SessionID string             `json:"sessionID"`
	Items     []CartItemResponse `json:"items"`
	Totals    CartTotalsResponse `json:"totals"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// CartTotalsResponse mirrors models.CartTotals for the wire.
type CartTotalsResponse struct {
	TotalReference decimal.Decimal `json:"totalReference"`
	TotalLocal     decimal.Decimal `json:"totalLocal"`
	ItemCount      int             `json:"itemCount"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
	Rate           decimal.Decimal `json:"rate"`
}

// OrderSummaryResponse is returned by checkout.
type OrderSummaryResponse struct {
	ItemCount int                `json:"itemCount"`
	Totals    CartTotalsResponse `json:"totals"`
	PlacedAt  time.Time          `json:"placedAt"`
}

// ToCartTotalsResponse converts derived cart totals to the wire form.
func ToCartTotalsResponse(t models.CartTotals) CartTotalsResponse {
	return CartTotalsResponse{
		TotalReference: t.TotalReference,
		TotalLocal:     t.TotalLocal,
		ItemCount:      t.ItemCount,
		CurrencyCode:   t.Currency.Code,
		CurrencySymbol: t.Currency.Symbol,
		Rate:           t.Currency.Rate,
	}
}

// ToCartResponse converts a cart plus its totals to the wire form.
func ToCartResponse(cart *models.Cart, totals models.CartTotals) CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Icon:      item.Icon,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		}
	}
	return CartResponse{
		SessionID: cart.SessionID,
		Items:     items,
		Totals:    ToCartTotalsResponse(totals),
		UpdatedAt: cart.UpdatedAt,
	}
}

// ToOrderSummaryResponse converts a checkout result to the wire form.
func ToOrderSummaryResponse(o *models.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ItemCount: o.ItemCount,
		Totals:    ToCartTotalsResponse(o.Totals),
		PlacedAt:  o.PlacedAt,
	}
}
