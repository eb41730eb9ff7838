package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/adilzhm/weather_store_app/internal/apperrors"
	"github.com/adilzhm/weather_store_app/internal/core/ports"
	"github.com/adilzhm/weather_store_app/internal/models"
	"github.com/shopspring/decimal"
)

// CartService owns the session cart ledgers. Each session holds an ordered
// list of entries plus the currency context from its last storefront query.
// State is process-local; the store-level mutex guards the session map and
// the single-writer-per-session mutations.
type CartService struct {
	productRepo ports.ProductRepository

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	cart     models.Cart
	currency models.CurrencyContext
}

// NewCartService creates a new CartService backed by the catalog repository.
func NewCartService(productRepo ports.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		sessions:    make(map[string]*cartSession),
	}
}

var _ ports.CartSvcFacade = (*CartService)(nil)

// GetCart returns the current cart and totals for a session, creating an
// empty ledger on first access.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, models.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	cart := snapshot(sess)
	return cart, totalsOf(sess)
}

// AddItem adds one unit of a product to the session cart. Unknown product
// IDs are a silent no-op: the entry is only created after the catalog lookup
// succeeds, so the ledger never references a product outside the catalog.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (*models.Cart, models.CartTotals, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			cart, totals := s.GetCart(ctx, sessionID)
			return cart, totals, nil
		}
		return nil, models.CartTotals{}, fmt.Errorf("failed to look up product for cart add: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if item := findItem(&sess.cart, productID); item != nil {
		item.Quantity++
	} else {
		sess.cart.Items = append(sess.cart.Items, models.CartItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Icon:      product.Icon,
			Quantity:  1,
		})
	}
	sess.cart.UpdatedAt = time.Now().UTC()

	return snapshot(sess), totalsOf(sess), nil
}

// RemoveItem deletes the entry for a product; absent entries are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, models.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	deleteItem(&sess.cart, productID)
	sess.cart.UpdatedAt = time.Now().UTC()

	return snapshot(sess), totalsOf(sess)
}

// UpdateQuantity applies a signed delta to an entry's quantity. A resulting
// quantity of zero or below removes the entry; deltas for absent entries are
// a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*models.Cart, models.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if item := findItem(&sess.cart, productID); item != nil {
		item.Quantity += delta
		if item.Quantity <= 0 {
			deleteItem(&sess.cart, productID)
		}
		sess.cart.UpdatedAt = time.Now().UTC()
	}

	return snapshot(sess), totalsOf(sess)
}

// ClearCart empties the session ledger unconditionally.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.cart.Items = nil
	sess.cart.UpdatedAt = time.Now().UTC()
}

// Checkout summarizes and empties the cart. Checking out an empty cart is a
// validation error.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if len(sess.cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	cart := snapshot(sess)
	summary := &models.OrderSummary{
		ItemCount: cart.ItemCount(),
		Totals:    totalsOf(sess),
		Items:     cart.Items,
		Currency:  sess.currency,
		PlacedAt:  time.Now().UTC(),
	}

	sess.cart.Items = nil
	sess.cart.UpdatedAt = summary.PlacedAt

	return summary, nil
}

// SetCurrencyContext installs the display currency for a session. Called by
// the storefront orchestrator after each weather query.
func (s *CartService) SetCurrencyContext(sessionID string, cc models.CurrencyContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).currency = cc
}

// session returns the ledger for sessionID, creating it with an identity
// currency context on first use. Caller must hold s.mu.
func (s *CartService) session(sessionID string) *cartSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{
			cart:     models.Cart{SessionID: sessionID, UpdatedAt: time.Now().UTC()},
			currency: models.IdentityCurrencyContext(),
		}
		s.sessions[sessionID] = sess
	}
	return sess
}

// totalsOf derives the pricing view: reference total at two decimal places,
// local total converted with the session rate and rounded to whole units.
// Caller must hold s.mu.
func totalsOf(sess *cartSession) models.CartTotals {
	total := decimal.Zero
	for _, item := range sess.cart.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.CartTotals{
		TotalReference: total.Round(2),
		TotalLocal:     total.Mul(sess.currency.Rate).Round(0),
		ItemCount:      sess.cart.ItemCount(),
		Currency:       sess.currency,
	}
}

func snapshot(sess *cartSession) *models.Cart {
	cart := sess.cart
	cart.Items = make([]models.CartItem, len(sess.cart.Items))
	copy(cart.Items, sess.cart.Items)
	return &cart
}

func findItem(cart *models.Cart, productID string) *models.CartItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}

func deleteItem(cart *models.Cart, productID string) {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return
		}
	}
}
