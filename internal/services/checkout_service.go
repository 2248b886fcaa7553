package services

import (
	"time"

	"techmart/internal/domain"
	"techmart/internal/pricing"
	"techmart/internal/repos"
)

// CheckoutService snapshots cart and catalog and runs both calculators.
// It is re-run on every request, so scheduler-driven catalog changes show up
// in the next quote without coordination.
type CheckoutService struct {
	Carts   *repos.CartRepo
	Catalog *repos.CatalogRepo
	Now     func() time.Time
}

func NewCheckoutService(carts *repos.CartRepo, catalog *repos.CatalogRepo) *CheckoutService {
	return &CheckoutService{Carts: carts, Catalog: catalog, Now: time.Now}
}

type QuoteLine struct {
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal int64          `json:"lineTotal"`
}

type Quote struct {
	Lines   []QuoteLine          `json:"lines"`
	Pricing domain.PricingResult `json:"pricing"`
	Points  domain.PointsResult  `json:"points"`
}

func (s *CheckoutService) Quote(sessionID string) (Quote, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return Quote{}, err
	}
	lines, err := s.Carts.Lines(cartID)
	if err != nil {
		return Quote{}, err
	}
	catalog, err := s.Catalog.List()
	if err != nil {
		return Quote{}, err
	}

	now := s.Now()
	pr := pricing.ComputeCartPricing(lines, catalog, now)
	pts := pricing.ComputeLoyaltyPoints(lines, pr.FinalAmount, now)

	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	views := []QuoteLine{}
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok || l.Quantity <= 0 {
			continue
		}
		views = append(views, QuoteLine{
			Product:   p,
			Quantity:  l.Quantity,
			LineTotal: p.Price * int64(l.Quantity),
		})
	}

	return Quote{Lines: views, Pricing: pr, Points: pts}, nil
}
