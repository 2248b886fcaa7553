package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"techmart/internal/domain"
)

// ComputeCartPricing prices a cart snapshot against a catalog snapshot.
// It never mutates its inputs; now is injected so results are reproducible.
//
// Sale markdowns are already baked into each product's Price, so the running
// total starts from current prices while Subtotal reports sticker
// (OriginalPrice) value. Quantity discounts are mutually exclusive per cart:
// the whole-cart bulk cut or the per-line individual cuts, never both. The
// Tuesday discount multiplies whatever survived. Rounding happens once, at
// the very end, half-up.
func ComputeCartPricing(cart []domain.CartLine, catalog []domain.Product, now time.Time) domain.PricingResult {
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	type pricedLine struct {
		qty     int
		product domain.Product
		amount  decimal.Decimal // current-price line total
	}

	var (
		subtotal  int64
		totalQty  int
		current   = decimal.Zero
		lines     []pricedLine
		discounts = []domain.DiscountLine{}
	)
	for _, l := range cart {
		p, ok := byID[l.ProductID]
		if !ok || l.Quantity <= 0 {
			// Caller-integrity problem; the line contributes nothing.
			continue
		}
		subtotal += p.OriginalPrice * int64(l.Quantity)
		totalQty += l.Quantity
		amt := decimal.NewFromInt(p.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
		current = current.Add(amt)
		lines = append(lines, pricedLine{qty: l.Quantity, product: p, amount: amt})
		if sl, ok := saleLine(p, l.Quantity); ok {
			discounts = append(discounts, sl)
		}
	}
	if totalQty == 0 {
		return domain.PricingResult{DiscountLines: discounts}
	}

	after := current
	if totalQty >= BulkThreshold {
		cut := current.Mul(decimal.NewFromFloat(BulkRate))
		after = current.Sub(cut)
		discounts = append(discounts, domain.DiscountLine{
			Kind:   domain.DiscountBulk,
			Rate:   BulkRate,
			Amount: cut.Round(0).IntPart(),
			Label:  fmt.Sprintf("Bulk purchase (%d+ items): %.0f%% off the whole cart", BulkThreshold, BulkRate*100),
		})
	} else {
		for _, pl := range lines {
			if pl.qty < IndividualThreshold {
				continue
			}
			rate, ok := IndividualRates[pl.product.ID]
			if !ok || rate == 0 {
				continue
			}
			cut := pl.amount.Mul(decimal.NewFromFloat(rate))
			after = after.Sub(cut)
			discounts = append(discounts, domain.DiscountLine{
				Kind:   domain.DiscountIndividual,
				Rate:   rate,
				Amount: cut.Round(0).IntPart(),
				Label:  fmt.Sprintf("%s (%d+ units): %.0f%% off", pl.product.Name, IndividualThreshold, rate*100),
			})
		}
	}

	if now.Weekday() == time.Tuesday && after.IsPositive() {
		cut := after.Mul(decimal.NewFromFloat(TuesdayRate))
		after = after.Sub(cut)
		discounts = append(discounts, domain.DiscountLine{
			Kind:   domain.DiscountTuesday,
			Rate:   TuesdayRate,
			Amount: cut.Round(0).IntPart(),
			Label:  fmt.Sprintf("Tuesday special: extra %.0f%% off", TuesdayRate*100),
		})
	}

	final := after.Round(0).IntPart()
	if final < 0 {
		final = 0
	}
	if final > subtotal {
		final = subtotal
	}

	rate := 0.0
	if subtotal > 0 {
		rate, _ = decimal.NewFromInt(subtotal - final).
			Div(decimal.NewFromInt(subtotal)).Float64()
	}

	return domain.PricingResult{
		Subtotal:              subtotal,
		FinalAmount:           final,
		DiscountLines:         discounts,
		EffectiveDiscountRate: rate,
	}
}

// saleLine reports the markdown already baked into a sale-flagged product's
// price. The amount is the sticker-vs-current gap, not a recomputation.
func saleLine(p domain.Product, qty int) (domain.DiscountLine, bool) {
	if !p.OnSale() || p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return domain.DiscountLine{}, false
	}
	gap := (p.OriginalPrice - p.Price) * int64(qty)
	rate, _ := decimal.NewFromInt(p.OriginalPrice - p.Price).
		Div(decimal.NewFromInt(p.OriginalPrice)).Float64()

	switch {
	case p.OnSuperSale():
		return domain.DiscountLine{
			Kind:   domain.DiscountSuperSale,
			Rate:   rate,
			Amount: gap,
			Label:  fmt.Sprintf("%s: SUPER SALE %.0f%% off", p.Name, SuperSaleRate*100),
		}, true
	case p.OnLightningSale:
		return domain.DiscountLine{
			Kind:   domain.DiscountLightning,
			Rate:   rate,
			Amount: gap,
			Label:  fmt.Sprintf("%s: lightning sale %.0f%% off", p.Name, LightningRate*100),
		}, true
	default:
		return domain.DiscountLine{
			Kind:   domain.DiscountRecommended,
			Rate:   rate,
			Amount: gap,
			Label:  fmt.Sprintf("%s: recommended pick %.0f%% off", p.Name, RecommendedRate*100),
		}, true
	}
}
