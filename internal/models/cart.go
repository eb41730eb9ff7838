package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a session cart. Name, price and icon are copied
// from the catalog entry at the time of the first add so totals stay stable
// even if the catalog changes mid-session.
type CartItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Icon      string          `json:"icon"`
	Quantity  int             `json:"quantity"`
}

// Cart is the ordered ledger of items for one storefront session.
type Cart struct {
	SessionID string     `json:"sessionID"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ItemCount is the sum of quantities across all entries.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// CartTotals is the derived pricing view of a cart. TotalReference is in the
// reference currency at two decimal places; TotalLocal is converted with the
// session rate and rounded to whole units for display.
type CartTotals struct {
	TotalReference decimal.Decimal `json:"totalReference"`
	TotalLocal     decimal.Decimal `json:"totalLocal"`
	ItemCount      int             `json:"itemCount"`
	Currency       CurrencyContext `json:"currency"`
}

// OrderSummary is returned by checkout, after which the cart is emptied.
type OrderSummary struct {
	ItemCount int             `json:"itemCount"`
	Totals    CartTotals      `json:"totals"`
	Items     []CartItem      `json:"items"`
	Currency  CurrencyContext `json:"currency"`
	PlacedAt  time.Time       `json:"placedAt"`
}
