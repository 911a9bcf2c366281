package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zelligewear/zellige-api/internal/models"
)

// Line is one (product snapshot, quantity) pair in a cart. The product,
// including its price, is copied at add time and never refreshed, so a later
// catalog edit does not change what the cart totals against.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store holds every signed-in user's cart in memory. Carts are session
// state: they are never written to the database and are lost on restart,
// matching the storefront's behavior.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]Line // keyed by user ID
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string][]Line)}
}

// AddItem puts one unit of the product in the user's cart, or bumps the
// quantity if a line for that product already exists.
func (s *Store) AddItem(userID string, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			lines[i].Quantity++
			return
		}
	}
	s.carts[userID] = append(lines, Line{Product: product, Quantity: 1})
}

// RemoveItem deletes the line for the product. Removing a product that is
// not in the cart is a no-op.
func (s *Store) RemoveItem(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity on an existing line. Quantities below 1
// remove the line, the same clamp the storefront applies in its quantity
// steppers.
func (s *Store) UpdateQuantity(userID, productID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(userID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the user's cart. Called after a successful checkout.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Items returns a copy of the user's cart lines.
func (s *Store) Items(userID string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.carts[userID] {
		count += line.Quantity
	}
	return count
}

// Total sums snapshotted unit price times quantity over all lines. Lines
// whose snapshot carries an unparsable price contribute nothing, matching
// the storefront's parseFloat behavior.
func (s *Store) Total(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, line := range s.carts[userID] {
		price, err := decimal.NewFromString(line.Product.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
