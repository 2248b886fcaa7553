package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"techmart/internal/config"
	"techmart/internal/domain"
	"techmart/internal/http/handlers"
	applog "techmart/internal/log"
	"techmart/internal/promo"
	"techmart/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	deps := handlers.NewDeps(db, cfg)

	// Promotion scheduler: the only background writer of catalog prices.
	sched := promo.New(deps.CatalogRepo, deps.Selection.Get, func(p domain.Promotion) {
		deps.Feed.Record(p)
		applog.Event("promo.applied", map[string]any{
			"type":    string(p.Type),
			"product": p.Product.ID,
			"name":    p.Product.Name,
			"price":   p.Product.Price,
			"rate":    p.Rate,
		})
	}, promo.Options{
		LightningDelayMax:   cfg.LightningDelayMax,
		LightningInterval:   cfg.LightningInterval,
		RecommendedDelayMax: cfg.RecommendedDelayMax,
		RecommendedInterval: cfg.RecommendedInterval,
	})
	sched.Start()

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// API and admin calls authenticate differently.
			p := c.Path()
			return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/admin")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Routes ----------
	app.Get("/", deps.CatalogHandler.Home)
	app.Post("/select", deps.CatalogHandler.Select)

	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.SetQuantity)
	app.Post("/cart/remove", deps.CartHandler.Remove)

	api := app.Group("/api/v1")
	api.Get("/pricing", deps.CheckoutHandler.Pricing)
	api.Get("/promotions", deps.CheckoutHandler.Promotions)

	admin := app.Group("/admin", handlers.RequireAdmin(cfg.AdminTokenHash))
	admin.Get("/catalog", deps.AdminHandler.CatalogPage)
	admin.Post("/price", deps.AdminHandler.SetPrice)
	admin.Post("/stock", deps.AdminHandler.SetStock)
	admin.Post("/sales/clear", deps.AdminHandler.ClearSales)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	// Graceful shutdown: stop the promotion timers before the listener dies
	// so no notification fires into a closed app.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		sched.Stop()
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		sched.Stop()
		log.Fatal(err)
	}
}
