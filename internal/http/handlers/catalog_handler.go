package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "techmart/internal/log"
	"techmart/internal/repos"
	"techmart/internal/services"
	"techmart/internal/validate"
)

type CatalogHandler struct {
	Catalog   *repos.CatalogRepo
	Selection *services.Selection
}

// Home renders the product list with sale badges.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	return render(c, "index", fiber.Map{"Products": products, "Selected": h.Selection.Get()})
}

// Select records the user's last-picked product; the recommended-sale loop
// skips that product when choosing its next markdown.
func (h *CatalogHandler) Select(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("invalid productId")
	}
	if _, err := h.Catalog.Get(id); err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	h.Selection.Set(id)
	applog.Info(c, "catalog.select", map[string]any{"product": id})
	return c.Redirect("/")
}
