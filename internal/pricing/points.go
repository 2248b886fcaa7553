package pricing

import (
	"fmt"
	"time"

	"techmart/internal/domain"
)

// ComputeLoyaltyPoints derives loyalty points from the amount actually paid
// and the cart contents. Same purity contract as ComputeCartPricing.
//
// Unlike the quantity-discount regime, the combo bonuses stack: a full set
// earns the keyboard+mouse bonus and the full-set bonus. The quantity-tier
// bonus awards only the highest tier reached.
func ComputeLoyaltyPoints(cart []domain.CartLine, finalAmount int64, now time.Time) domain.PointsResult {
	var (
		totalQty    int
		hasKeyboard bool
		hasMouse    bool
		hasArm      bool
	)
	for _, l := range cart {
		if l.Quantity <= 0 {
			continue
		}
		totalQty += l.Quantity
		switch l.ProductID {
		case ProductKeyboard:
			hasKeyboard = true
		case ProductMouse:
			hasMouse = true
		case ProductMonitorArm:
			hasArm = true
		}
	}

	details := []string{}
	if totalQty == 0 {
		return domain.PointsResult{Details: details}
	}

	base := 0
	if finalAmount > 0 {
		base = int(finalAmount / PointDivisor)
	}
	bonus := 0
	if base > 0 {
		details = append(details, fmt.Sprintf("Base: %dp", base))
		if now.Weekday() == time.Tuesday {
			bonus += base
			details = append(details, "Tuesday: points x2")
		}
	}

	if hasKeyboard && hasMouse {
		bonus += ComboBonusKeyboardMouse
		details = append(details, fmt.Sprintf("Keyboard + mouse set: +%dp", ComboBonusKeyboardMouse))
		if hasArm {
			bonus += ComboBonusFullSet
			details = append(details, fmt.Sprintf("Full desk set: +%dp", ComboBonusFullSet))
		}
	}

	switch {
	case totalQty >= TierThresholdLarge:
		bonus += TierBonusLarge
		details = append(details, fmt.Sprintf("Volume (%d+ units): +%dp", TierThresholdLarge, TierBonusLarge))
	case totalQty >= TierThresholdMedium:
		bonus += TierBonusMedium
		details = append(details, fmt.Sprintf("Volume (%d+ units): +%dp", TierThresholdMedium, TierBonusMedium))
	case totalQty >= TierThresholdSmall:
		bonus += TierBonusSmall
		details = append(details, fmt.Sprintf("Volume (%d+ units): +%dp", TierThresholdSmall, TierBonusSmall))
	}

	return domain.PointsResult{
		BasePoints:  base,
		BonusPoints: bonus,
		TotalPoints: base + bonus,
		Details:     details,
	}
}
