package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/majadash/admin-console/internal/core/domain"
)

func newTestStore(t *testing.T) *FileCredentialStore {
	t.Helper()
	return NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestFileCredentialStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	user := domain.AuthUser{ID: "1", Name: "A", Email: "a@b.com", Role: domain.RoleAdmin}
	if err := store.Save("t1", user); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	token, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if token != "t1" {
		t.Fatalf("expected token t1, got %q", token)
	}
	if loaded == nil || *loaded != user {
		t.Fatalf("unexpected user: %+v", loaded)
	}
	if store.Token() != "t1" {
		t.Fatalf("Token() mismatch: %q", store.Token())
	}
}

func TestFileCredentialStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	token, user, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected empty credentials, got %q %+v", token, user)
	}
}

func TestFileCredentialStore_PartialIsUnauthenticated(t *testing.T) {
	store := newTestStore(t)

	// Token without user must not count as a session.
	if err := os.WriteFile(store.path, []byte(`{"token":"t1"}`), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	token, user, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("partial credentials should load as empty, got %q %+v", token, user)
	}
}

func TestFileCredentialStore_CorruptIsUnauthenticated(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	token, user, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("corrupt credentials should load as empty")
	}
}

func TestFileCredentialStore_Clear(t *testing.T) {
	store := newTestStore(t)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on empty store returned error: %v", err)
	}

	_ = store.Save("t1", domain.AuthUser{ID: "1"})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	token, user, _ := store.Load()
	if token != "" || user != nil {
		t.Fatalf("expected cleared store to be empty")
	}
	if store.Token() != "" {
		t.Fatalf("Token() after clear should be empty")
	}
}
