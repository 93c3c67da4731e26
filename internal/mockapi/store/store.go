// Package store is the in-memory backing of the mock admin API. The fixture
// server exists for local development and integration tests, so state lives
// for the process only; a restart reseeds it.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/majadash/admin-console/internal/core/domain"
)

// Account couples a managed user with its password hash. The hash never
// leaves this package.
type Account struct {
	User         domain.User
	PasswordHash string
}

// Store holds products and accounts behind a single mutex. Echo serves
// requests concurrently, so every accessor locks.
type Store struct {
	mu       sync.Mutex
	products []domain.Product
	accounts []Account
}

// New seeds the store with an admin account and a small catalogue.
func New(adminPassword string) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s := &Store{
		products: []domain.Product{
			{ID: uuid.NewString(), Name: "Café de grano", Description: "Tueste medio, 500g", Price: 189.50, Stock: 24},
			{ID: uuid.NewString(), Name: "Té verde", Description: "Hebras sueltas, 100g", Price: 85, Stock: 40},
			{ID: uuid.NewString(), Name: "Azúcar mascabado", Description: "Bolsa de 1kg", Price: 32, Stock: 0},
		},
	}
	s.accounts = []Account{{
		User: domain.User{
			ID:       uuid.NewString(),
			Name:     "Administrador",
			Email:    "admin@maja.com",
			Role:     domain.RoleAdmin,
			IsActive: true,
		},
		PasswordHash: string(hash),
	}}
	return s, nil
}

// Authenticate verifies an email/password pair against active accounts.
func (s *Store) Authenticate(email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		acc := &s.accounts[i]
		if !strings.EqualFold(acc.User.Email, email) {
			continue
		}
		if !acc.User.IsActive {
			return nil, domain.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		u := acc.User
		return &u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *Store) ListProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) CreateProduct(data domain.CreateProductData) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
	}
	s.products = append(s.products, p)
	return p
}

// UpdateProduct applies a partial update: only fields present in the patch
// change, matching the PATCH semantics the real API exposes.
func (s *Store) UpdateProduct(id string, patch ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		out := *p
		return &out, nil
	}
	return nil, domain.ErrProductNotFound
}

// ProductPatch is the partial-update shape for PATCH /products/:id.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (s *Store) ListUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.accounts))
	for i := range s.accounts {
		out = append(out, s.accounts[i].User)
	}
	return out
}

func (s *Store) CreateUser(data domain.CreateUserData) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].User.Email, data.Email) {
			return nil, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := Account{
		User: domain.User{
			ID:       uuid.NewString(),
			Name:     data.Name,
			Email:    data.Email,
			Role:     data.Role,
			IsActive: true,
		},
		PasswordHash: string(hash),
	}
	s.accounts = append(s.accounts, acc)
	u := acc.User
	return &u, nil
}

func (s *Store) UpdateUser(id string, data domain.UpdateUserData) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].User.ID != id {
			continue
		}
		u := &s.accounts[i].User
		u.Name = data.Name
		u.Email = data.Email
		u.Role = data.Role
		out := *u
		return &out, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) SetUserActive(id string, active bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].User.ID != id {
			continue
		}
		s.accounts[i].User.IsActive = active
		out := s.accounts[i].User
		return &out, nil
	}
	return nil, domain.ErrUserNotFound
}
