// Package api implements the typed HTTP client for the remote admin API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/ports"
)

// Client talks JSON over HTTP to the remote API. Each call is a single
// best-effort round trip: no retry, no caching. The bearer token is read
// from durable storage on every request so the header always reflects the
// current session.
type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialStore
	log     zerolog.Logger
}

func NewClient(baseURL string, creds ports.CredentialStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
		log:     log,
	}
}

// do executes one request. A transport-level failure becomes a
// NetworkError; a non-2xx response becomes a RequestError carrying the
// server's message when the body provided one. On 2xx the body is decoded
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &domain.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(resp.Body)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", msg).
			Msg("non-2xx response")
		return &domain.RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// serverMessage extracts the optional error text from a failure body. The
// API uses {"message": ...}; the {"error": ...} envelope is accepted too.
func serverMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var res ports.LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, data domain.CreateProductData) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, data domain.CreateProductData) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+id, data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProductStock(ctx context.Context, id string, data domain.StockUpdateData) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+id, data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, data domain.CreateUserData) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPost, "/users", data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, data domain.UpdateUserData) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPatch, "/users/"+id, data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

func (c *Client) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodPatch, "/users/"+id+"/status", statusRequest{IsActive: active}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
