package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/majadash/admin-console/internal/core/domain"
	"github.com/majadash/admin-console/internal/core/ports"
)

// SessionService owns the in-memory session and its durable mirror. It is
// the only writer of both: login and logout mutate them together, restore
// reads them once at startup before any navigation is evaluated.
type SessionService struct {
	client ports.ResourceClient
	creds  ports.CredentialStore
	log    zerolog.Logger

	session domain.Session
}

func NewSessionService(client ports.ResourceClient, creds ports.CredentialStore, log zerolog.Logger) *SessionService {
	return &SessionService{client: client, creds: creds, log: log, session: domain.Anonymous}
}

// Current returns the in-memory session.
func (s *SessionService) Current() domain.Session {
	return s.session
}

// Restore loads persisted credentials without touching the network. A
// complete pair flips the session to authenticated; anything else leaves it
// anonymous. A stored JWT that is visibly past its expiry is discarded up
// front rather than failing on the first real call.
func (s *SessionService) Restore() {
	token, user, err := s.creds.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
		return
	}
	if token == "" || user == nil {
		return
	}
	if tokenExpired(token) {
		s.log.Info().Msg("stored token expired, clearing credentials")
		_ = s.creds.Clear()
		return
	}
	s.session = domain.Session{Token: token, User: user}
	s.log.Info().Str("user", user.Email).Str("role", string(user.Role)).Msg("session restored")
}

// Login authenticates against the remote API. On success both credential
// entries are persisted atomically and the in-memory session flips to
// authenticated. On any rejected response the prior session state is left
// untouched and ErrInvalidCredentials is returned; transport failures keep
// their NetworkError identity.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		var re *domain.RequestError
		if errors.As(err, &re) {
			return s.session, domain.ErrInvalidCredentials
		}
		return s.session, err
	}

	user := domain.AuthUser{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Role:  domain.ParseRole(string(res.User.Role)),
	}
	if err := s.creds.Save(res.AccessToken, user); err != nil {
		s.log.Error().Err(err).Msg("failed to persist credentials")
		return s.session, err
	}

	s.session = domain.Session{Token: res.AccessToken, User: &user}
	s.log.Info().Str("user", user.Email).Str("role", string(user.Role)).Msg("logged in")
	return s.session, nil
}

// Logout clears the in-memory session and both persisted entries. It never
// fails: a storage error is logged and the in-memory session is cleared
// regardless. No server-side call is made.
func (s *SessionService) Logout() {
	if err := s.creds.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted credentials")
	}
	s.session = domain.Anonymous
	s.log.Info().Msg("logged out")
}

// tokenExpired peeks at a stored JWT's exp claim without verifying the
// signature (the client has no key; verification is the server's job). An
// opaque or claimless token is treated as live.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
