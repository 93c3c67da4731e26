package domain

// Session is the authenticated identity bound to this client instance.
// Invariant: IsAuthenticated() == (Token != "" && User != nil). The struct is
// only ever produced whole by the session service, never mutated field by
// field.
type Session struct {
	Token string
	User  *AuthUser
}

// IsAuthenticated reports whether both halves of the session are present.
// Partial state (token without user, or the reverse) counts as signed out.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Anonymous is the zero session used before login and after logout.
var Anonymous = Session{}
