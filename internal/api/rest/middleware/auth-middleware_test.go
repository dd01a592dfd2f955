package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SundayYogurt/bank_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

type fakeTokenRepo struct {
	blocked map[string]bool
}

func (r *fakeTokenRepo) Add(jti string) error {
	r.blocked[jti] = true
	return nil
}

func (r *fakeTokenRepo) IsBlocked(jti string) (bool, error) {
	return r.blocked[jti], nil
}

func (r *fakeTokenRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	return 0, nil
}

func protectedApp(auth helper.Auth, tokens *fakeTokenRepo) *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(auth, tokens))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	tokens := &fakeTokenRepo{blocked: make(map[string]bool)}
	app := protectedApp(auth, tokens)

	token, err := auth.GenerateToken(7, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no_token", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "garbage_token", header: "Bearer not-a-jwt", wantStatus: fiber.StatusUnauthorized},
		{name: "valid_token", header: "Bearer " + token, wantStatus: fiber.StatusOK},
		{name: "raw_token_without_bearer", header: token, wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	tokens := &fakeTokenRepo{blocked: make(map[string]bool)}
	app := protectedApp(auth, tokens)

	token, err := auth.GenerateToken(7, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status before logout = %d, want 200", resp.StatusCode)
	}

	// logging out blocks the jti; the same token is now rejected
	if err := tokens.Add(claims.Jti); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status after logout = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	tokens := &fakeTokenRepo{blocked: make(map[string]bool)}
	app := protectedApp(auth, tokens)

	expired := helper.Auth{Secret: "test-secret", TTL: -time.Hour}
	token, err := expired.GenerateToken(7, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for expired token", resp.StatusCode)
	}
}
