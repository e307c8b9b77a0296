// Package cart is the client-held shopping cart. It is the sole owner of the
// line collection: every mutation goes through the Store and re-persists the
// whole cart to durable local storage before returning. No server-side cart
// exists.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/localstore"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/pricing"
)

// StorageKey is the fixed durable-storage key for the cart snapshot.
const StorageKey = "cart"

// Line is one product in the cart. Name and ImageURL are display snapshots
// taken at add time; they are not refreshed from the catalog afterwards.
type Line struct {
	ProductID   int64   `json:"id"`
	Name        string  `json:"name"`
	UnitPriceHT float64 `json:"price_ht"`
	TVA         float64 `json:"tva"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Store holds the lines and persists them on every mutation. It is meant for
// single-goroutine cooperative use, like the event-loop client it models.
type Store struct {
	lines []Line
	st    localstore.Store
}

// New loads the persisted snapshot. A missing or unreadable snapshot means an
// empty cart; lines with a quantity below 1 are dropped on load.
func New(st localstore.Store) *Store {
	s := &Store{st: st}

	raw, ok, err := st.Get(StorageKey)
	if err != nil || !ok {
		return s
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return s
	}
	for _, l := range lines {
		if l.ProductID == 0 || l.Quantity < 1 {
			continue
		}
		s.lines = append(s.lines, l)
	}
	return s
}

// Add merges by product id: an existing line gets its quantity increased,
// otherwise a new line is appended. A quantity below 1 defaults to 1.
func (s *Store) Add(l Line, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	if i := s.index(l.ProductID); i >= 0 {
		s.lines[i].Quantity += quantity
		return s.save()
	}

	l.Quantity = quantity
	s.lines = append(s.lines, l)
	return s.save()
}

// Remove deletes the line for productID. Unknown ids are a no-op, not an
// error.
func (s *Store) Remove(productID int64) error {
	i := s.index(productID)
	if i < 0 {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.save()
}

// UpdateQuantity overwrites a line's quantity. Zero or negative removes the
// line, same as Remove. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}
	i := s.index(productID)
	if i < 0 {
		return nil
	}
	s.lines[i].Quantity = quantity
	return s.save()
}

// Clear empties the cart, typically after a quote request went through.
func (s *Store) Clear() error {
	s.lines = nil
	return s.save()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems counts units across all lines, not distinct products.
func (s *Store) TotalItems() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) TotalHT() float64 {
	return pricing.CartTotalHT(s.pricingLines())
}

func (s *Store) TotalTTC() float64 {
	return pricing.CartTotalTTC(s.pricingLines())
}

func (s *Store) pricingLines() []pricing.Line {
	out := make([]pricing.Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = pricing.Line{UnitPriceHT: l.UnitPriceHT, TVA: l.TVA, Quantity: l.Quantity}
	}
	return out
}

func (s *Store) index(productID int64) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) save() error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("cart: marshal: %w", err)
	}
	if s.lines == nil {
		raw = []byte("[]")
	}
	return s.st.Set(StorageKey, raw)
}
