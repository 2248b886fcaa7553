package pricing_test

import (
	"reflect"
	"testing"

	"techmart/internal/domain"
	"techmart/internal/pricing"
)

func TestPointsEmptyCart(t *testing.T) {
	r := pricing.ComputeLoyaltyPoints(nil, 0, monday)
	if r.BasePoints != 0 || r.BonusPoints != 0 || r.TotalPoints != 0 {
		t.Fatalf("want zero result, got %+v", r)
	}
	if r.Details == nil || len(r.Details) != 0 {
		t.Fatalf("want empty details, got %v", r.Details)
	}
}

func TestPointsBase(t *testing.T) {
	cart := []domain.CartLine{{ProductID: "p1", Quantity: 2}}
	r := pricing.ComputeLoyaltyPoints(cart, 20000, monday)
	if r.BasePoints != 20 || r.BonusPoints != 0 || r.TotalPoints != 20 {
		t.Fatalf("want 20/0/20, got %+v", r)
	}
	if !reflect.DeepEqual(r.Details, []string{"Base: 20p"}) {
		t.Fatalf("bad details: %v", r.Details)
	}
}

func TestPointsBaseTruncates(t *testing.T) {
	cart := []domain.CartLine{{ProductID: "p1", Quantity: 1}}
	r := pricing.ComputeLoyaltyPoints(cart, 1999, monday)
	if r.BasePoints != 1 {
		t.Fatalf("1999 must floor to 1 point, got %d", r.BasePoints)
	}
}

func TestPointsTuesdayDoubles(t *testing.T) {
	cart := []domain.CartLine{{ProductID: "p1", Quantity: 10}}
	r := pricing.ComputeLoyaltyPoints(cart, 81000, tuesday)
	// base 81, doubled to 162, plus the 10-unit tier bonus
	if r.BasePoints != 81 {
		t.Fatalf("want base 81, got %d", r.BasePoints)
	}
	if r.TotalPoints != 81*2+pricing.TierBonusSmall {
		t.Fatalf("want %d, got %d", 81*2+pricing.TierBonusSmall, r.TotalPoints)
	}
	if r.TotalPoints != r.BasePoints+r.BonusPoints {
		t.Fatalf("total must equal base+bonus: %+v", r)
	}
}

func TestPointsTuesdayNoDoubleOnZeroBase(t *testing.T) {
	cart := []domain.CartLine{{ProductID: "p1", Quantity: 1}}
	r := pricing.ComputeLoyaltyPoints(cart, 500, tuesday)
	if r.BasePoints != 0 || r.BonusPoints != 0 {
		t.Fatalf("no base, no doubling: %+v", r)
	}
	if len(r.Details) != 0 {
		t.Fatalf("no detail lines expected: %v", r.Details)
	}
}

func TestPointsComboBothFire(t *testing.T) {
	cart := []domain.CartLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}
	r := pricing.ComputeLoyaltyPoints(cart, 60000, monday)
	want := 60 + pricing.ComboBonusKeyboardMouse + pricing.ComboBonusFullSet
	if r.TotalPoints != want {
		t.Fatalf("want %d, got %d (both combo bonuses must stack)", want, r.TotalPoints)
	}
	wantDetails := []string{
		"Base: 60p",
		"Keyboard + mouse set: +50p",
		"Full desk set: +100p",
	}
	if !reflect.DeepEqual(r.Details, wantDetails) {
		t.Fatalf("bad details: %v", r.Details)
	}
}

func TestPointsKeyboardMouseOnly(t *testing.T) {
	cart := []domain.CartLine{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
	}
	r := pricing.ComputeLoyaltyPoints(cart, 30000, monday)
	if r.BonusPoints != pricing.ComboBonusKeyboardMouse {
		t.Fatalf("want +50 only, got %+v", r)
	}
}

func TestPointsNoComboWithoutKeyboard(t *testing.T) {
	cart := []domain.CartLine{
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}
	r := pricing.ComputeLoyaltyPoints(cart, 50000, monday)
	if r.BonusPoints != 0 {
		t.Fatalf("mouse+arm is not a set: %+v", r)
	}
}

func TestPointsQuantityTiers(t *testing.T) {
	cases := []struct {
		qty  int
		want int
	}{
		{9, 0},
		{10, pricing.TierBonusSmall},
		{19, pricing.TierBonusSmall},
		{20, pricing.TierBonusMedium},
		{30, pricing.TierBonusLarge},
		{35, pricing.TierBonusLarge},
	}
	for _, tc := range cases {
		cart := []domain.CartLine{{ProductID: "p5", Quantity: tc.qty}}
		r := pricing.ComputeLoyaltyPoints(cart, 0, monday)
		if r.BonusPoints != tc.want {
			t.Fatalf("qty %d: want tier bonus %d, got %d", tc.qty, tc.want, r.BonusPoints)
		}
	}
}

func TestPointsDetailOrder(t *testing.T) {
	cart := []domain.CartLine{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 5},
	}
	r := pricing.ComputeLoyaltyPoints(cart, 100000, tuesday)
	want := []string{
		"Base: 100p",
		"Tuesday: points x2",
		"Keyboard + mouse set: +50p",
		"Volume (10+ units): +20p",
	}
	if !reflect.DeepEqual(r.Details, want) {
		t.Fatalf("details out of order:\nwant %v\ngot  %v", want, r.Details)
	}
	if r.TotalPoints != 100+100+50+20 {
		t.Fatalf("want 270, got %d", r.TotalPoints)
	}
}
