// Package promo runs the timed lightning/recommended sale promotions. It is
// the only concurrent actor in the core: two independent periodic tasks that
// pick catalog products and apply markdowns through the Store.
package promo

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"techmart/internal/domain"
	"techmart/internal/pricing"
)

// Store is the catalog write surface the scheduler needs. *repos.CatalogRepo
// satisfies it; the Mark methods must re-check eligibility and report an
// error when a concurrent writer won the race.
type Store interface {
	List() ([]domain.Product, error)
	MarkLightning(productID string) (domain.Product, error)
	MarkRecommended(productID string) (domain.Product, error)
}

// Notify receives one event per applied promotion.
type Notify func(domain.Promotion)

type Options struct {
	LightningDelayMax   time.Duration // initial delay drawn from [0, max)
	LightningInterval   time.Duration
	RecommendedDelayMax time.Duration
	RecommendedInterval time.Duration
	Rand                *rand.Rand       // nil: time-seeded
	Now                 func() time.Time // nil: time.Now
}

const (
	DefaultLightningDelayMax   = 10 * time.Second
	DefaultLightningInterval   = 30 * time.Second
	DefaultRecommendedDelayMax = 20 * time.Second
	DefaultRecommendedInterval = 60 * time.Second
)

type Scheduler struct {
	store        Store
	lastSelected func() string
	notify       Notify
	opts         Options

	mu  sync.Mutex // guards rnd; rand.Rand is not safe for concurrent use
	rnd *rand.Rand

	startOnce sync.Once
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a scheduler. lastSelected supplies the product the user most
// recently viewed (the recommended sale skips it); it may return "" when
// nothing was selected yet.
func New(store Store, lastSelected func() string, notify Notify, opts Options) *Scheduler {
	if opts.LightningDelayMax <= 0 {
		opts.LightningDelayMax = DefaultLightningDelayMax
	}
	if opts.LightningInterval <= 0 {
		opts.LightningInterval = DefaultLightningInterval
	}
	if opts.RecommendedDelayMax <= 0 {
		opts.RecommendedDelayMax = DefaultRecommendedDelayMax
	}
	if opts.RecommendedInterval <= 0 {
		opts.RecommendedInterval = DefaultRecommendedInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if lastSelected == nil {
		lastSelected = func() string { return "" }
	}
	if notify == nil {
		notify = func(domain.Promotion) {}
	}
	return &Scheduler{
		store:        store,
		lastSelected: lastSelected,
		notify:       notify,
		opts:         opts,
		rnd:          rnd,
	}
}

// Start launches both promotion loops. Calling it more than once is a no-op.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.wg.Add(2)
		go s.run(ctx, s.opts.LightningDelayMax, s.opts.LightningInterval, s.fireLightning)
		go s.run(ctx, s.opts.RecommendedDelayMax, s.opts.RecommendedInterval, s.fireRecommended)
	})
}

// Stop cancels both loops and waits for them to exit. Idempotent; no
// notification fires after Stop returns.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, delayMax, interval time.Duration, fire func()) {
	defer s.wg.Done()

	delay := time.Duration(s.intn(int(delayMax)))
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}
	fire()

	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			fire()
		}
	}
}

// fireLightning picks one product uniformly at random. An ineligible pick is
// a legitimate no-op; there is no retry within the tick.
func (s *Scheduler) fireLightning() {
	products, err := s.store.List()
	if err != nil || len(products) == 0 {
		return
	}
	pick := products[s.intn(len(products))]
	if pick.Stock <= 0 || pick.OnLightningSale {
		return
	}
	updated, err := s.store.MarkLightning(pick.ID)
	if err != nil {
		return
	}
	s.notify(domain.Promotion{
		Type:    domain.PromotionLightning,
		Product: updated,
		Rate:    pricing.LightningRate,
		At:      s.opts.Now(),
	})
}

// fireRecommended scans the catalog in order for the first product that is
// not the last-selected one, has stock, and is not already recommended.
func (s *Scheduler) fireRecommended() {
	last := s.lastSelected()
	products, err := s.store.List()
	if err != nil {
		return
	}
	for _, p := range products {
		if p.ID == last || p.Stock <= 0 || p.OnRecommendedSale {
			continue
		}
		updated, err := s.store.MarkRecommended(p.ID)
		if err != nil {
			return
		}
		s.notify(domain.Promotion{
			Type:    domain.PromotionRecommended,
			Product: updated,
			Rate:    pricing.RecommendedRate,
			At:      s.opts.Now(),
		})
		return
	}
}

func (s *Scheduler) intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
