package service

import (
	"sync"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CartKeeper = (*CartService)(nil)

// CartService owns the ordered cart line items for the session. It never
// returns an error: duplicate adds are signaled by the boolean return and
// every other invalid request is absorbed as a no-op.
type CartService struct {
	mu          sync.Mutex
	items       []domain.CartItem
	subscribers []func(domain.CartSummary)
}

func NewCart() *CartService {
	return &CartService{}
}

// Add appends a single-quantity line item for p. It returns false and
// leaves the cart unchanged when a line for the same product id already
// exists; the cart never holds duplicate lines.
func (s *CartService) Add(p domain.Product) bool {
	s.mu.Lock()
	for _, it := range s.items {
		if it.ID == p.ID {
			s.mu.Unlock()
			return false
		}
	}
	s.items = append(s.items, domain.CartItem{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Quantity: 1,
	})
	s.mu.Unlock()

	s.notify()
	return true
}

// Remove deletes the line item with the given id; absent ids are a no-op.
func (s *CartService) Remove(id int64) {
	s.mu.Lock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

// UpdateQuantity sets the line quantity for id. Quantities below 1 are
// rejected and the stored value stays as is; absent ids are a no-op.
// Validation lives here, not only in callers.
func (s *CartService) UpdateQuantity(id int64, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

func (s *CartService) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notify()
}

// Items returns a copy of the line items in insertion order.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItemsLocked()
}

func (s *CartService) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

func (s *CartService) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

// Subscribe registers fn to run after every successful cart mutation.
// Consumers observe the store through notifications instead of reading a
// shared global.
func (s *CartService) Subscribe(fn func(domain.CartSummary)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *CartService) notify() {
	s.mu.Lock()
	summary := s.summaryLocked()
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(summary)
	}
}

func (s *CartService) totalItemsLocked() int {
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *CartService) totalPriceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (s *CartService) summaryLocked() domain.CartSummary {
	return domain.CartSummary{
		TotalItems: s.totalItemsLocked(),
		TotalPrice: s.totalPriceLocked(),
	}
}
