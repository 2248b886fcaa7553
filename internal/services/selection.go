package services

import "sync"

// Selection tracks the product the user most recently picked in the UI.
// The recommended-sale loop reads it to avoid discounting that product.
type Selection struct {
	mu sync.RWMutex
	id string
}

func NewSelection() *Selection { return &Selection{} }

func (s *Selection) Set(productID string) {
	s.mu.Lock()
	s.id = productID
	s.mu.Unlock()
}

func (s *Selection) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}
