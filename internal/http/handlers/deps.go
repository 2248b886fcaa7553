package handlers

import (
	"github.com/jmoiron/sqlx"

	"techmart/internal/config"
	"techmart/internal/repos"
	"techmart/internal/services"
)

type Deps struct {
	CatalogRepo *repos.CatalogRepo

	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler

	Selection *services.Selection
	Feed      *services.PromoFeed
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catalogRepo := repos.NewCatalogRepo(db)
	cartRepo := repos.NewCartRepo(db)

	cartSvc := services.NewCartService(cartRepo, catalogRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, catalogRepo)
	selection := services.NewSelection()
	feed := services.NewPromoFeed(20)

	return &Deps{
		CatalogRepo:     catalogRepo,
		CatalogHandler:  &CatalogHandler{Catalog: catalogRepo, Selection: selection},
		CartHandler:     &CartHandler{Cart: cartSvc, Checkout: checkoutSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc, Feed: feed},
		AdminHandler:    &AdminHandler{Catalog: catalogRepo},
		Selection:       selection,
		Feed:            feed,
	}
}
