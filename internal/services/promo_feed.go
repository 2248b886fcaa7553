package services

import (
	"sync"

	"techmart/internal/domain"
)

// PromoFeed keeps the most recent promotion notifications for the
// /api/v1/promotions endpoint. Safe for concurrent use; the scheduler writes,
// handlers read.
type PromoFeed struct {
	mu     sync.Mutex
	events []domain.Promotion
	max    int
}

func NewPromoFeed(max int) *PromoFeed {
	if max <= 0 {
		max = 20
	}
	return &PromoFeed{max: max}
}

func (f *PromoFeed) Record(p domain.Promotion) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, p)
	if len(f.events) > f.max {
		f.events = f.events[len(f.events)-f.max:]
	}
}

// Recent returns newest-first copies of the buffered events.
func (f *PromoFeed) Recent() []domain.Promotion {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Promotion, len(f.events))
	for i, e := range f.events {
		out[len(f.events)-1-i] = e
	}
	return out
}
