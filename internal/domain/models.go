package domain

import "time"

type Product struct {
	ID                string `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	Price             int64  `db:"price" json:"price"`
	OriginalPrice     int64  `db:"original_price" json:"originalPrice"`
	Stock             int    `db:"stock" json:"stock"`
	OnLightningSale   bool   `db:"on_lightning_sale" json:"onLightningSale"`
	OnRecommendedSale bool   `db:"on_recommended_sale" json:"onRecommendedSale"`
}

// OnSale reports whether any scheduler-driven sale is active.
func (p Product) OnSale() bool { return p.OnLightningSale || p.OnRecommendedSale }

// OnSuperSale reports both sale types active at once.
func (p Product) OnSuperSale() bool { return p.OnLightningSale && p.OnRecommendedSale }

type CartLine struct {
	ProductID string `db:"product_id" json:"productId"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

type DiscountKind string

const (
	DiscountIndividual  DiscountKind = "individual"
	DiscountBulk        DiscountKind = "bulk"
	DiscountTuesday     DiscountKind = "tuesday"
	DiscountLightning   DiscountKind = "lightning"
	DiscountRecommended DiscountKind = "recommended"
	DiscountSuperSale   DiscountKind = "superSale"
)

type DiscountLine struct {
	Kind   DiscountKind `json:"kind"`
	Rate   float64      `json:"rate"`
	Amount int64        `json:"amount"`
	Label  string       `json:"label"`
}

type PricingResult struct {
	Subtotal              int64          `json:"subtotal"`
	FinalAmount           int64          `json:"finalAmount"`
	DiscountLines         []DiscountLine `json:"discountLines"`
	EffectiveDiscountRate float64        `json:"effectiveDiscountRate"`
}

type PointsResult struct {
	BasePoints  int      `json:"basePoints"`
	BonusPoints int      `json:"bonusPoints"`
	TotalPoints int      `json:"totalPoints"`
	Details     []string `json:"details"`
}

type PromotionType string

const (
	PromotionLightning   PromotionType = "lightning"
	PromotionRecommended PromotionType = "recommended"
)

// Promotion is the notification emitted when the scheduler puts a product on sale.
type Promotion struct {
	Type    PromotionType `json:"type"`
	Product Product       `json:"product"`
	Rate    float64       `json:"rate"`
	At      time.Time     `json:"at"`
}
