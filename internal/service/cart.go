package service

import (
	"sync"

	"github.com/google/uuid"

	"buntudelice/internal/domain"
)

// CartStore holds each session's cart in memory, in insertion order.
// Loss on process restart is acceptable; nothing here persists.
type CartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID][]domain.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[uuid.UUID][]domain.CartItem{}}
}

// Add is an upsert: an existing line with the same menu item id gets its
// quantity and customizations replaced (never summed), keeping its
// position. A non-positive quantity removes the line instead.
func (s *CartStore) Add(userID uuid.UUID, item domain.CartItem) {
	if item.Quantity <= 0 {
		s.Remove(userID, item.MenuItemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].MenuItemID == item.MenuItemID {
			items[i] = item
			return
		}
	}
	s.carts[userID] = append(items, item)
}

// Remove is idempotent: removing an absent line is a no-op.
func (s *CartStore) Remove(userID, menuItemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].MenuItemID == menuItemID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// SetQuantity with q <= 0 is equivalent to Remove.
func (s *CartStore) SetQuantity(userID, menuItemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.Remove(userID, menuItemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].MenuItemID == menuItemID {
			items[i].Quantity = quantity
			return
		}
	}
}

// Snapshot returns the ordered lines with their totals and the cart total.
func (s *CartStore) Snapshot(userID uuid.UUID) ([]domain.CartLine, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	lines := make([]domain.CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		lines = append(lines, domain.CartLine{CartItem: item, LineTotal: lineTotal})
		total += lineTotal
	}
	return lines, total
}

func (s *CartStore) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

var _ CartServiceInterface = (*CartStore)(nil)
