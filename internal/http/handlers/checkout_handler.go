package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "techmart/internal/log"
	"techmart/internal/services"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
	Feed     *services.PromoFeed
}

// Pricing returns the full pricing + points report for the session's cart.
func (h *CheckoutHandler) Pricing(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	q, err := h.Checkout.Quote(sid)
	if err != nil {
		applog.Error(c, "pricing.quote.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not compute pricing"})
	}
	return c.JSON(q)
}

// Promotions lists recent scheduler notifications, newest first.
func (h *CheckoutHandler) Promotions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"promotions": h.Feed.Recent()})
}
