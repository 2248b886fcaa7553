package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"techmart/internal/config"
	"techmart/internal/http/handlers"
)

func adminApp(t *testing.T, tokenHash string) *fiber.App {
	t.Helper()
	deps := handlers.NewDeps(memdb(t), config.Config{AdminTokenHash: tokenHash})

	app := fiber.New()
	admin := app.Group("/admin", handlers.RequireAdmin(tokenHash))
	admin.Get("/catalog", deps.AdminHandler.CatalogPage)
	return app
}

func TestAdminRejectsBadToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	app := adminApp(t, string(hash))

	req := httptest.NewRequest("GET", "/admin/catalog", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 without token, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/admin/catalog", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 with bad token, got %d", resp.StatusCode)
	}
}

func TestAdminAcceptsGoodToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	app := adminApp(t, string(hash))

	req := httptest.NewRequest("GET", "/admin/catalog", nil)
	req.Header.Set("Authorization", "Bearer letmein")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200 with valid token, got %d", resp.StatusCode)
	}
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	app := adminApp(t, "")

	req := httptest.NewRequest("GET", "/admin/catalog", nil)
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("admin must be hidden when unconfigured, got %d", resp.StatusCode)
	}
}
