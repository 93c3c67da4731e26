package ports

import "github.com/majadash/admin-console/internal/core/domain"

// CredentialStore is the durable key-value home of the bearer token and the
// user projection. Both entries are written together on login and removed
// together on logout; Load treats partial presence as "not authenticated"
// and returns neither half.
type CredentialStore interface {
	// Save persists token and user atomically.
	Save(token string, user domain.AuthUser) error
	// Load returns the stored pair, or ("", nil, nil) when absent or
	// partial. An error is returned only for unreadable storage.
	Load() (token string, user *domain.AuthUser, err error)
	// Clear removes both entries. Clearing an empty store is a no-op.
	Clear() error
	// Token returns just the stored token, or "" when none. Used by the
	// resource client to decide whether to attach the Authorization header.
	Token() string
}
