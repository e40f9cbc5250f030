package services

import (
	apperrors "posada/internal/errors"
	"posada/internal/metrics"
	"posada/internal/models"
	"posada/internal/state"

	"golang.org/x/crypto/bcrypt"
)

// sessionService handles terminal login sessions.
type sessionService struct {
	state *state.State
	// adminPasswordHash, when non-empty, is the bcrypt hash every login
	// password is checked against. When empty, any non-empty pair of
	// credentials starts a session (demo mode).
	adminPasswordHash string
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(st *state.State, adminPasswordHash string) SessionServicer {
	return &sessionService{state: st, adminPasswordHash: adminPasswordHash}
}

// Login starts a session for the given user and persists it so a restart
// restores the login.
func (s *sessionService) Login(username, password string) (sess *models.Session, err error) {
	defer func() { metrics.ObserveOperation("login", err) }()

	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}

	if s.adminPasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)) != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
	}

	sess = &models.Session{Username: username}
	flushErr := s.state.SetSession(*sess)
	warnDegraded("login", flushErr)
	return sess, nil
}

// Logout ends the session and removes the persisted login.
func (s *sessionService) Logout() error {
	flushErr := s.state.ClearSession()
	warnDegraded("logout", flushErr)
	metrics.ObserveOperation("logout", nil)
	return nil
}

// Current returns the logged-in session, or nil when logged out.
func (s *sessionService) Current() *models.Session {
	return s.state.Session()
}
