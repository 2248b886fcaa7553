package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"techmart/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE products(id TEXT PRIMARY KEY, name TEXT, price INTEGER, original_price INTEGER,
	  stock INTEGER, on_lightning_sale INTEGER DEFAULT 0, on_recommended_sale INTEGER DEFAULT 0,
	  created_at TEXT, updated_at TEXT);

	INSERT INTO products(id,name,price,original_price,stock) VALUES
	  ('p1','Keyboard',10000,10000,50),
	  ('p4','Laptop Pouch',5000,5000,0),
	  ('p5','Speaker',50000,50000,10);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestMarkLightning(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))

	p, err := r.MarkLightning("p1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 8000 || p.OriginalPrice != 10000 || !p.OnLightningSale {
		t.Fatalf("bad markdown: %+v", p)
	}

	// second application is refused, price does not compound
	if _, err := r.MarkLightning("p1"); err != repos.ErrNotEligible {
		t.Fatalf("want ErrNotEligible, got %v", err)
	}
	p, _ = r.Get("p1")
	if p.Price != 8000 {
		t.Fatalf("price compounded: %d", p.Price)
	}
}

func TestMarkLightningNoStock(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))
	if _, err := r.MarkLightning("p4"); err != repos.ErrNotEligible {
		t.Fatalf("want ErrNotEligible for zero stock, got %v", err)
	}
}

func TestMarkRecommendedCompounds(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))

	if _, err := r.MarkLightning("p1"); err != nil {
		t.Fatal(err)
	}
	p, err := r.MarkRecommended("p1")
	if err != nil {
		t.Fatal(err)
	}
	// 10000 -> 8000 (lightning) -> 7600 (recommended on current price)
	if p.Price != 7600 {
		t.Fatalf("want 7600, got %d", p.Price)
	}
	if !p.OnSuperSale() {
		t.Fatalf("want both flags set: %+v", p)
	}
}

func TestClearSales(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))
	if _, err := r.MarkLightning("p5"); err != nil {
		t.Fatal(err)
	}
	if err := r.ClearSales(); err != nil {
		t.Fatal(err)
	}
	p, _ := r.Get("p5")
	if p.Price != 50000 || p.OnSale() {
		t.Fatalf("sticker price not restored: %+v", p)
	}
}

func TestSetPriceResetsSales(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))
	if _, err := r.MarkLightning("p1"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetPrice("p1", 12000); err != nil {
		t.Fatal(err)
	}
	p, _ := r.Get("p1")
	if p.Price != 12000 || p.OriginalPrice != 12000 || p.OnSale() {
		t.Fatalf("admin reprice must supersede sales: %+v", p)
	}
}

func TestAdjustStockGuard(t *testing.T) {
	r := repos.NewCatalogRepo(memdb(t))
	if err := r.AdjustStock("p5", -10); err != nil {
		t.Fatal(err)
	}
	if err := r.AdjustStock("p5", -1); err == nil {
		t.Fatal("want error when stock would go negative")
	}
	p, _ := r.Get("p5")
	if p.Stock != 0 {
		t.Fatalf("want 0, got %d", p.Stock)
	}
}
