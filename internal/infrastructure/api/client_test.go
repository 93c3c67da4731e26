package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
)

// staticStore is a CredentialStore double holding a fixed token.
type staticStore struct {
	token string
	user  *domain.AuthUser
}

func (s *staticStore) Save(token string, user domain.AuthUser) error {
	s.token = token
	u := user
	s.user = &u
	return nil
}

func (s *staticStore) Load() (string, *domain.AuthUser, error) {
	if s.token == "" || s.user == nil {
		return "", nil, nil
	}
	return s.token, s.user, nil
}

func (s *staticStore) Clear() error {
	s.token = ""
	s.user = nil
	return nil
}

func (s *staticStore) Token() string { return s.token }

func authedStore() *staticStore {
	return &staticStore{token: "t1", user: &domain.AuthUser{ID: "1", Email: "a@b.com", Role: domain.RoleAdmin}}
}

func newTestServer(t *testing.T, register func(e *echo.Echo)) (*httptest.Server, *Client, *staticStore) {
	t.Helper()
	e := echo.New()
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	store := authedStore()
	return srv, NewClient(srv.URL, store, zerolog.Nop()), store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	_, client, _ := newTestServer(t, func(e *echo.Echo) {
		e.GET("/products", func(c echo.Context) error {
			gotAuth = c.Request().Header.Get("Authorization")
			return c.JSON(http.StatusOK, []domain.Product{})
		})
	})

	if _, err := client.ListProducts(context.Background()); err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_OmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv, _, _ := newTestServer(t, func(e *echo.Echo) {
		e.POST("/auth/login", func(c echo.Context) error {
			gotAuth = c.Request().Header.Get("Authorization")
			return c.JSON(http.StatusOK, map[string]any{
				"access_token": "t1",
				"user":         map[string]string{"_id": "1", "name": "A", "email": "a@b.com", "role": "admin"},
			})
		})
	})
	client := NewClient(srv.URL, &staticStore{}, zerolog.Nop())

	res, err := client.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("no Authorization header expected before login, got %q", gotAuth)
	}
	if res.AccessToken != "t1" || res.User.ID != "1" || res.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected login result: %+v", res)
	}
}

func TestClient_RequestErrorCarriesServerMessage(t *testing.T) {
	_, client, _ := newTestServer(t, func(e *echo.Echo) {
		e.POST("/products", func(c echo.Context) error {
			return c.JSON(http.StatusConflict, map[string]string{"message": "producto duplicado"})
		})
	})

	_, err := client.CreateProduct(context.Background(), domain.CreateProductData{
		Name: "Pan", Description: "Integral", Price: 25, Stock: 8,
	})
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.StatusCode != http.StatusConflict || re.Message != "producto duplicado" {
		t.Fatalf("unexpected request error: %+v", re)
	}
}

func TestClient_RequestErrorAcceptsErrorEnvelope(t *testing.T) {
	_, client, _ := newTestServer(t, func(e *echo.Echo) {
		e.GET("/users", func(c echo.Context) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		})
	})

	_, err := client.ListUsers(context.Background())
	var re *domain.RequestError
	if !errors.As(err, &re) || re.Message != "forbidden" {
		t.Fatalf("expected forbidden request error, got %v", err)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv, client, _ := newTestServer(t, func(e *echo.Echo) {})
	srv.Close()

	_, err := client.ListProducts(context.Background())
	var ne *domain.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestClient_ProductRoutes(t *testing.T) {
	var gotMethod, gotPath string
	var gotStock int
	_, client, _ := newTestServer(t, func(e *echo.Echo) {
		e.PATCH("/products/:id", func(c echo.Context) error {
			gotMethod = c.Request().Method
			gotPath = c.Request().URL.Path
			var body struct {
				Stock int `json:"stock"`
			}
			if err := c.Bind(&body); err != nil {
				return err
			}
			gotStock = body.Stock
			return c.JSON(http.StatusOK, domain.Product{ID: c.Param("id"), Stock: body.Stock})
		})
		e.DELETE("/products/:id", func(c echo.Context) error {
			gotMethod = c.Request().Method
			gotPath = c.Request().URL.Path
			return c.NoContent(http.StatusOK)
		})
	})

	updated, err := client.UpdateProductStock(context.Background(), "p1", domain.StockUpdateData{Stock: 2})
	if err != nil {
		t.Fatalf("UpdateProductStock failed: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/products/p1" || gotStock != 2 {
		t.Fatalf("unexpected request: %s %s stock=%d", gotMethod, gotPath, gotStock)
	}
	if updated.Stock != 2 {
		t.Fatalf("unexpected response: %+v", updated)
	}

	if err := client.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/products/p1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestClient_UserStatusRoute(t *testing.T) {
	var gotPath string
	var gotActive bool
	_, client, _ := newTestServer(t, func(e *echo.Echo) {
		e.PATCH("/users/:id/status", func(c echo.Context) error {
			gotPath = c.Request().URL.Path
			var body struct {
				IsActive bool `json:"isActive"`
			}
			if err := c.Bind(&body); err != nil {
				return err
			}
			gotActive = body.IsActive
			return c.JSON(http.StatusOK, domain.User{ID: c.Param("id"), IsActive: body.IsActive})
		})
	})

	updated, err := client.SetUserActive(context.Background(), "u2", false)
	if err != nil {
		t.Fatalf("SetUserActive failed: %v", err)
	}
	if gotPath != "/users/u2/status" || gotActive != false {
		t.Fatalf("unexpected request: %s active=%v", gotPath, gotActive)
	}
	if updated.IsActive {
		t.Fatalf("unexpected response: %+v", updated)
	}
}
