package ports

import (
	"context"

	"github.com/majadash/admin-console/internal/core/domain"
)

// LoginResult is the successful response of the auth endpoint.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	User        domain.AuthUser `json:"user"`
}

// ResourceClient is the typed wrapper around the remote admin API. Every
// authenticated call attaches the bearer token currently held in durable
// storage; callers never see HTTP details, only domain values and the
// structured error taxonomy (RequestError, NetworkError).
//
// Calls are single best-effort round trips: no retry, no caching.
type ResourceClient interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, data domain.CreateProductData) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, data domain.CreateProductData) (*domain.Product, error)
	UpdateProductStock(ctx context.Context, id string, data domain.StockUpdateData) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, data domain.CreateUserData) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, data domain.UpdateUserData) (*domain.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
}
