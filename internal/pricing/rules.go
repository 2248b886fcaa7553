package pricing

// Fixed catalog ids for the five seeded products. The combo bonuses and
// per-product discount rates key off these.
const (
	ProductKeyboard   = "p1"
	ProductMouse      = "p2"
	ProductMonitorArm = "p3"
	ProductPouch      = "p4"
	ProductSpeaker    = "p5"
)

// Quantity-regime rules. Bulk and individual discounts never combine: a cart
// at or above BulkThreshold takes the flat bulk cut and suppresses every
// per-line discount.
const (
	IndividualThreshold = 10
	BulkThreshold       = 30
	BulkRate            = 0.25
	TuesdayRate         = 0.10
)

// Sale markdowns applied by the promotion scheduler. The recommended rate
// compounds on the current price, so a product on both sales ends up at
// roughly 76% of its original price while being advertised as a super sale.
const (
	LightningRate   = 0.20
	RecommendedRate = 0.05
	SuperSaleRate   = 0.25
)

// Loyalty point rules.
const (
	PointDivisor            = 1000
	ComboBonusKeyboardMouse = 50
	ComboBonusFullSet       = 100

	TierThresholdSmall  = 10
	TierThresholdMedium = 20
	TierThresholdLarge  = 30
	TierBonusSmall      = 20
	TierBonusMedium     = 50
	TierBonusLarge      = 100
)

// IndividualRates maps product id to the per-line discount rate applied once
// a single line reaches IndividualThreshold units.
var IndividualRates = map[string]float64{
	ProductKeyboard:   0.10,
	ProductMouse:      0.15,
	ProductMonitorArm: 0.20,
	ProductPouch:      0.05,
	ProductSpeaker:    0.25,
}
