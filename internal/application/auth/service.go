// Package auth relays browser authentication to the CRM backend. The
// console issues no credentials of its own; it forwards the login, hands
// the backend's cookies to the browser, and validates sessions by asking
// the backend who the cookie belongs to.
package auth

import (
	"context"
	"strings"

	"reachdesk/internal/domain/account"
	"reachdesk/internal/infrastructure/crm"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
)

// Gateway is the authentication slice of the CRM backend API.
type Gateway interface {
	Login(ctx context.Context, username, password string) (*crm.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*account.User, error)
}

type Service struct {
	gateway Gateway
	logger  logger.Interface
}

func NewService(gateway Gateway, logger logger.Interface) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// Login authenticates and returns the backend session cookies to set on the
// browser.
func (s *Service) Login(ctx context.Context, username, password string) (*crm.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	session, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		s.logger.Warnw("login failed", "username", username, "error", err)
		return nil, err
	}

	s.logger.Infow("login succeeded", "username", username)
	return session, nil
}

// Logout invalidates the backend session. A failure is logged but not
// surfaced: the browser cookies get cleared either way.
func (s *Service) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Warnw("backend logout failed", "error", err)
	}
}

// CurrentUser resolves the session in ctx to a backend user.
func (s *Service) CurrentUser(ctx context.Context) (*account.User, error) {
	return s.gateway.CurrentUser(ctx)
}
