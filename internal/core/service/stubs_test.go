package service

import (
	"context"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/ports"
)

// stubClient is a hand-rolled ResourceClient double. Each operation returns
// the configured value or error and records the payload it was given.
type stubClient struct {
	loginResult *ports.LoginResult
	loginErr    error

	products        []domain.Product
	listProductsErr error
	createdProduct  *domain.Product
	createErr       error
	updatedProduct  *domain.Product
	updateErr       error
	stockProduct    *domain.Product
	stockErr        error
	deleteErr       error

	users        []domain.User
	listUsersErr error
	createdUser  *domain.User
	updatedUser  *domain.User
	toggledUser  *domain.User
	userErr      error

	lastCreateProduct domain.CreateProductData
	lastUpdateProduct domain.CreateProductData
	lastStockUpdate   domain.StockUpdateData
	lastCreateUser    domain.CreateUserData
	lastUpdateUser    domain.UpdateUserData
	lastSetActive     bool
	lastDeletedID     string
	calls             []string
}

func (c *stubClient) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	c.calls = append(c.calls, "login")
	if c.loginErr != nil {
		return nil, c.loginErr
	}
	return c.loginResult, nil
}

func (c *stubClient) ListProducts(_ context.Context) ([]domain.Product, error) {
	c.calls = append(c.calls, "listProducts")
	if c.listProductsErr != nil {
		return nil, c.listProductsErr
	}
	return c.products, nil
}

func (c *stubClient) CreateProduct(_ context.Context, data domain.CreateProductData) (*domain.Product, error) {
	c.calls = append(c.calls, "createProduct")
	c.lastCreateProduct = data
	if c.createErr != nil {
		return nil, c.createErr
	}
	return c.createdProduct, nil
}

func (c *stubClient) UpdateProduct(_ context.Context, id string, data domain.CreateProductData) (*domain.Product, error) {
	c.calls = append(c.calls, "updateProduct "+id)
	c.lastUpdateProduct = data
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	return c.updatedProduct, nil
}

func (c *stubClient) UpdateProductStock(_ context.Context, id string, data domain.StockUpdateData) (*domain.Product, error) {
	c.calls = append(c.calls, "updateProductStock "+id)
	c.lastStockUpdate = data
	if c.stockErr != nil {
		return nil, c.stockErr
	}
	return c.stockProduct, nil
}

func (c *stubClient) DeleteProduct(_ context.Context, id string) error {
	c.calls = append(c.calls, "deleteProduct "+id)
	c.lastDeletedID = id
	return c.deleteErr
}

func (c *stubClient) ListUsers(_ context.Context) ([]domain.User, error) {
	c.calls = append(c.calls, "listUsers")
	if c.listUsersErr != nil {
		return nil, c.listUsersErr
	}
	return c.users, nil
}

func (c *stubClient) CreateUser(_ context.Context, data domain.CreateUserData) (*domain.User, error) {
	c.calls = append(c.calls, "createUser")
	c.lastCreateUser = data
	if c.userErr != nil {
		return nil, c.userErr
	}
	return c.createdUser, nil
}

func (c *stubClient) UpdateUser(_ context.Context, id string, data domain.UpdateUserData) (*domain.User, error) {
	c.calls = append(c.calls, "updateUser "+id)
	c.lastUpdateUser = data
	if c.userErr != nil {
		return nil, c.userErr
	}
	return c.updatedUser, nil
}

func (c *stubClient) SetUserActive(_ context.Context, id string, active bool) (*domain.User, error) {
	c.calls = append(c.calls, "setUserActive "+id)
	c.lastSetActive = active
	if c.userErr != nil {
		return nil, c.userErr
	}
	return c.toggledUser, nil
}

// stubNotifier records notifications in order.
type stubNotifier struct {
	successes []string
	errors    []string
}

func (n *stubNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *stubNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// memStore is an in-memory CredentialStore double.
type memStore struct {
	token   string
	user    *domain.AuthUser
	loadErr error
	saveErr error
}

func (s *memStore) Save(token string, user domain.AuthUser) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	u := user
	s.user = &u
	return nil
}

func (s *memStore) Load() (string, *domain.AuthUser, error) {
	if s.loadErr != nil {
		return "", nil, s.loadErr
	}
	if s.token == "" || s.user == nil {
		return "", nil, nil
	}
	u := *s.user
	return s.token, &u, nil
}

func (s *memStore) Clear() error {
	s.token = ""
	s.user = nil
	return nil
}

func (s *memStore) Token() string {
	token, _, _ := s.Load()
	return token
}
