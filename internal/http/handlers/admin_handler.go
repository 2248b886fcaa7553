package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "techmart/internal/log"
	"techmart/internal/repos"
	"techmart/internal/validate"
)

type AdminHandler struct {
	Catalog *repos.CatalogRepo
}

// GET /admin/catalog
func (h *AdminHandler) CatalogPage(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "admin.catalog.list.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not load catalog"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// POST /admin/price
func (h *AdminHandler) SetPrice(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.FormValue("product_id"))
	price, okPrice := validate.Amount(c.FormValue("price"))
	if !okID || !okPrice {
		return c.Status(400).SendString("invalid input")
	}
	if err := h.Catalog.SetPrice(pid, price); err != nil {
		applog.Error(c, "admin.price.save.fail", err, map[string]any{"product": pid, "price": price})
		return c.Status(400).SendString("could not save price")
	}
	applog.Audit(c, "admin.price.save", map[string]any{"product": pid, "price": price})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /admin/stock
func (h *AdminHandler) SetStock(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.FormValue("product_id"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	if !okID || !okStock {
		return c.Status(400).SendString("invalid input")
	}
	if err := h.Catalog.SetStock(pid, stock); err != nil {
		applog.Error(c, "admin.stock.save.fail", err, map[string]any{"product": pid, "stock": stock})
		return c.Status(400).SendString("could not save stock")
	}
	applog.Audit(c, "admin.stock.save", map[string]any{"product": pid, "stock": stock})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /admin/sales/clear
func (h *AdminHandler) ClearSales(c *fiber.Ctx) error {
	if err := h.Catalog.ClearSales(); err != nil {
		applog.Error(c, "admin.sales.clear.fail", err, nil)
		return c.Status(500).SendString("could not clear sales")
	}
	applog.Audit(c, "admin.sales.clear", nil)
	return c.SendStatus(fiber.StatusNoContent)
}
