package service

import "github.com/majadash/admin-console/internal/core/domain"

// Requirement is a capability a navigation target demands. RequireAdmin
// implies RequireAuth.
type Requirement int

const (
	RequireAuth Requirement = iota
	RequireAdmin
)

// Decision is the gate's verdict for one navigation attempt.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectHome silently sends an authenticated but under-privileged
	// visitor to the default landing view. Not an error page: the denial
	// is never reported.
	RedirectHome
)

// Gate makes the synchronous per-navigation authorization decision against
// the current session. It holds no state of its own and is re-evaluated on
// every navigation.
type Gate struct {
	sessions *SessionService
}

func NewGate(sessions *SessionService) *Gate {
	return &Gate{sessions: sessions}
}

func (g *Gate) Check(req Requirement) Decision {
	session := g.sessions.Current()
	if !session.IsAuthenticated() {
		return RedirectLogin
	}

	switch req {
	case RequireAuth:
		return Allow
	case RequireAdmin:
		switch session.User.Role {
		case domain.RoleAdmin:
			return Allow
		case domain.RoleUser:
			return RedirectHome
		default:
			return RedirectHome
		}
	default:
		return RedirectLogin
	}
}
