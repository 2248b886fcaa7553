package services

import (
	"errors"

	"techmart/internal/domain"
	"techmart/internal/repos"
)

var ErrOutOfStock = errors.New("not enough stock")

// CartService owns the cart/stock invariant: units in a cart are reserved
// out of catalog stock, and come back when the line shrinks or disappears.
type CartService struct {
	Carts   *repos.CartRepo
	Catalog *repos.CatalogRepo
}

func NewCartService(carts *repos.CartRepo, catalog *repos.CatalogRepo) *CartService {
	return &CartService{Carts: carts, Catalog: catalog}
}

func (s *CartService) Add(sessionID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	if _, err := s.Catalog.Get(productID); err != nil {
		return err
	}
	if err := s.Catalog.AdjustStock(productID, -qty); err != nil {
		return ErrOutOfStock
	}
	return s.Carts.AddQuantity(cartID, productID, qty)
}

// SetQuantity moves a line to an absolute quantity, reserving or restoring
// stock for the difference. qty <= 0 removes the line.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) error {
	if qty <= 0 {
		return s.Remove(sessionID, productID)
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	cur, err := s.Carts.LineQty(cartID, productID)
	if err != nil {
		return err
	}
	delta := qty - cur
	if delta != 0 {
		if err := s.Catalog.AdjustStock(productID, -delta); err != nil {
			return ErrOutOfStock
		}
	}
	return s.Carts.SetQuantity(cartID, productID, qty)
}

func (s *CartService) Remove(sessionID, productID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	cur, err := s.Carts.LineQty(cartID, productID)
	if err != nil {
		return err
	}
	if cur == 0 {
		return nil
	}
	if err := s.Catalog.AdjustStock(productID, cur); err != nil {
		return err
	}
	return s.Carts.RemoveLine(cartID, productID)
}

func (s *CartService) Lines(sessionID string) ([]domain.CartLine, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Carts.Lines(cartID)
}
