package repos

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"techmart/internal/domain"
	"techmart/internal/pricing"
)

// ErrNotEligible signals a sale could not be applied because the product is
// out of stock or already on that sale type. Callers treat it as a no-op.
var ErrNotEligible = errors.New("product not eligible for sale")

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

const productCols = `id, name, price, original_price, stock, on_lightning_sale, on_recommended_sale`

// List returns the full catalog in stable seed order.
func (r *CatalogRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY id`)
	return out, err
}

func (r *CatalogRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// AdjustStock atomically moves stock by delta (negative when units go into a
// cart, positive when they come back). Fails without writing if the result
// would be negative.
func (r *CatalogRepo) AdjustStock(productID string, delta int) error {
	res, err := r.db.Exec(`
		UPDATE products
		SET stock = stock + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND stock + ? >= 0
	`, delta, productID, delta)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("insufficient stock for %s", productID)
	}
	return nil
}

// MarkLightning puts a product on lightning sale at 80% of its original
// price. The WHERE guard re-checks eligibility so a concurrent writer cannot
// double-apply the markdown.
func (r *CatalogRepo) MarkLightning(productID string) (domain.Product, error) {
	p, err := r.Get(productID)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Stock <= 0 || p.OnLightningSale {
		return domain.Product{}, ErrNotEligible
	}
	price := decimal.NewFromInt(p.OriginalPrice).
		Mul(decimal.NewFromFloat(1 - pricing.LightningRate)).
		Round(0).IntPart()
	res, err := r.db.Exec(`
		UPDATE products
		SET price = ?, on_lightning_sale = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND stock > 0 AND on_lightning_sale = 0
	`, price, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, ErrNotEligible
	}
	return r.Get(productID)
}

// MarkRecommended puts a product on recommended sale at 95% of its current
// price. Compounding on the current price is deliberate: a product already on
// lightning sale drops to ~76% of sticker.
func (r *CatalogRepo) MarkRecommended(productID string) (domain.Product, error) {
	p, err := r.Get(productID)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Stock <= 0 || p.OnRecommendedSale {
		return domain.Product{}, ErrNotEligible
	}
	price := decimal.NewFromInt(p.Price).
		Mul(decimal.NewFromFloat(1 - pricing.RecommendedRate)).
		Round(0).IntPart()
	res, err := r.db.Exec(`
		UPDATE products
		SET price = ?, on_recommended_sale = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND stock > 0 AND on_recommended_sale = 0
	`, price, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, ErrNotEligible
	}
	return r.Get(productID)
}

// SetPrice is the catalog-admin write path. It resets both prices and clears
// sale flags, since an admin reprice supersedes any running promotion.
func (r *CatalogRepo) SetPrice(productID string, price int64) error {
	if price < 0 {
		return fmt.Errorf("negative price for %s", productID)
	}
	res, err := r.db.Exec(`
		UPDATE products
		SET price = ?, original_price = ?,
		    on_lightning_sale = 0, on_recommended_sale = 0,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, price, price, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no such product %s", productID)
	}
	return nil
}

// SetStock sets the absolute stock level (admin restock).
func (r *CatalogRepo) SetStock(productID string, stock int) error {
	if stock < 0 {
		return fmt.Errorf("negative stock for %s", productID)
	}
	res, err := r.db.Exec(`
		UPDATE products SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, stock, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no such product %s", productID)
	}
	return nil
}

// ClearSales ends every running sale and restores sticker prices.
func (r *CatalogRepo) ClearSales() error {
	_, err := r.db.Exec(`
		UPDATE products
		SET price = original_price, on_lightning_sale = 0, on_recommended_sale = 0,
		    updated_at = CURRENT_TIMESTAMP
		WHERE on_lightning_sale = 1 OR on_recommended_sale = 1
	`)
	return err
}
