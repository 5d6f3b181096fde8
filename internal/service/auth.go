package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/pkg/inflight"
	"github.com/schoolhub/portal/internal/pkg/jwthelper"
	"github.com/schoolhub/portal/internal/profile"
	"github.com/schoolhub/portal/internal/session"
)

type AuthUserRepository interface {
	Login(ctx context.Context, username, password string) (domain.LoginResult, error)
}

type AuthService struct {
	repo  AuthUserRepository
	guard inflight.Guard
}

func NewAuthService(repo AuthUserRepository, guard inflight.Guard) *AuthService {
	return &AuthService{
		repo:  repo,
		guard: guard,
	}
}

// LoginOutcome is what the login screen shows after a successful login.
type LoginOutcome struct {
	Message string
	Summary profile.Summary
}

// Login authenticates against the school API. On success the token is
// always stored and the username is remembered only if asked to; any
// previously remembered username is forgotten otherwise.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials, store session.Store) (LoginOutcome, error) {
	release, ok, err := s.guard.Acquire(ctx, inflight.Key("login", creds.Username))
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("s.guard.Acquire -> %w", err)
	}
	if !ok {
		return LoginOutcome{}, ErrInFlight
	}
	defer release()

	res, err := s.repo.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("s.repo.Login -> %w", err)
	}

	if err = store.SetToken(res.Token); err != nil {
		return LoginOutcome{}, fmt.Errorf("store.SetToken -> %w", err)
	}

	if creds.RememberMe {
		err = store.SetRememberedUsername(creds.Username)
	} else {
		err = store.ClearRememberedUsername()
	}
	if err != nil {
		return LoginOutcome{}, fmt.Errorf("remember username -> %w", err)
	}

	if exp, ok := jwthelper.ExpiresAt(res.Token); ok {
		zap.L().Debug("session established", zap.String("username", creds.Username), zap.Time("expires_at", exp))
	}

	return LoginOutcome{
		Message: res.Message,
		Summary: profile.Render(res.User),
	}, nil
}

// LoginScreen is the state the login form starts from.
type LoginScreen struct {
	RememberedUsername string
	LoggedIn           bool
}

func (s *AuthService) Screen(store session.Store) LoginScreen {
	return LoginScreen{
		RememberedUsername: store.RememberedUsername(),
		LoggedIn:           activeToken(store) != "",
	}
}

func (s *AuthService) Logout(store session.Store) error {
	if err := store.ClearToken(); err != nil {
		return fmt.Errorf("store.ClearToken -> %w", err)
	}

	return nil
}

// activeToken returns the stored token unless it is missing or expired.
func activeToken(store session.Store) string {
	token := store.Token()
	if token == "" || jwthelper.Expired(token, timeNow()) {
		return ""
	}

	return token
}
