// Package auth implements the admin panel's email/password authentication:
// credential verification against the user store, session tokens, and the
// auth-state change notifications the gate subscribes to.
package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmrivera/portfolio-backend/errs"
	"github.com/mmrivera/portfolio-backend/models"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
}

type Service struct {
	users    UserStore
	notifier *Notifier
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewService(users UserStore, notifier *Notifier, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		notifier: notifier,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   log.With().Str("component", "auth").Logger(),
	}
}

// Notifier exposes the state-change broadcaster for gate subscriptions.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// SignIn verifies the credentials and returns a session token. Every failure
// mode, including store errors, surfaces as the same invalid-credentials
// error; store failures are logged but never leaked to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		s.logger.Error().Err(err).Msg("user lookup failed during sign-in")
		return "", errs.NewInvalidCredentialsError()
	}
	if user == nil {
		return "", errs.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.NewInvalidCredentialsError()
	}

	token, err := GenerateToken(user.Email, s.secret, s.tokenTTL)
	if err != nil {
		s.logger.Error().Err(err).Msg("token generation failed")
		return "", errs.NewInternalError("could not create session")
	}

	s.notifier.Publish(true)
	return token, nil
}

// SignOut publishes the signed-out state. Tokens are stateless, so there is
// nothing to revoke server-side; listeners drop their sessions.
func (s *Service) SignOut(ctx context.Context) {
	s.notifier.Publish(false)
}

// Verify checks a session token and returns the admin email it belongs to.
func (s *Service) Verify(token string) (string, error) {
	email, err := EmailFromToken(token, s.secret)
	if err != nil {
		return "", errs.NewUnauthorizedError("invalid or expired session")
	}
	return email, nil
}

// HashPassword produces the bcrypt hash stored for an admin user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
