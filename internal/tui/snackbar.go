package tui

import (
	"sync"
	"time"
)

// snackbarTTL is how long a notification stays on screen.
const snackbarTTL = 4 * time.Second

// Snackbar is the transient status line the editors notify through. It
// satisfies ports.Notifier. Editors run inside tea commands, so access is
// guarded by a mutex; the view polls Current on every render.
type Snackbar struct {
	mu       sync.Mutex
	message  string
	isError  bool
	deadline time.Time
}

func NewSnackbar() *Snackbar {
	return &Snackbar{}
}

func (s *Snackbar) Success(msg string) { s.set(msg, false) }
func (s *Snackbar) Error(msg string)   { s.set(msg, true) }

func (s *Snackbar) set(msg string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	s.isError = isError
	s.deadline = time.Now().Add(snackbarTTL)
}

// Current returns the visible message, or "" once it has expired.
func (s *Snackbar) Current() (msg string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == "" || time.Now().After(s.deadline) {
		return "", false
	}
	return s.message, s.isError
}

// View renders the status line with the given styles.
func (s *Snackbar) View(styles Styles) string {
	msg, isError := s.Current()
	if msg == "" {
		return ""
	}
	if isError {
		return styles.Danger.Render("✗ " + msg)
	}
	return styles.Success.Render("✓ " + msg)
}
