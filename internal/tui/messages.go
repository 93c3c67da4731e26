package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages delivered back into the update loop by commands. Network work
// happens inside commands; each one resolves to a plain result message so
// the loop stays the single place state transitions are observed.

type tickMsg time.Time

// loginDoneMsg carries the outcome of a login attempt. The session itself
// lives in the SessionService; the message only reports success or failure.
type loginDoneMsg struct {
	err error
}

// productsLoadedMsg / usersLoadedMsg signal a finished list fetch; the
// editor already holds the result (or the load error).
type productsLoadedMsg struct{ err error }
type usersLoadedMsg struct{ err error }

// productOpDoneMsg / userOpDoneMsg signal a finished mutation. The editor
// has already reconciled its list and notified the snackbar.
type productOpDoneMsg struct{ err error }
type userOpDoneMsg struct{ err error }

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// opCtx bounds every interactive network call. No user-facing cancellation
// exists; the deadline only keeps an unreachable server from wedging a
// command forever.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
