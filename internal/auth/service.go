// Package auth implements the login check. Authentication here is a
// deliberate simplification: credentials are compared in plain text against
// the stored user collection, no session or token is issued, and every other
// endpoint stays unauthenticated at the server layer. The client alone
// remembers "logged in" state.
package auth

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/internal/user"
)

// Repository defines the user lookup needed for login.
type Repository interface {
	GetByUsername(username string) (*user.User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Authenticate checks username and password by exact match. Unknown username
// and wrong password both return the same non-specific error so the response
// does not reveal which usernames exist.
func (s *Service) Authenticate(dto LoginDTO) (*user.User, error) {
	u, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("user store unavailable during login", "error", err)
			return nil, internal.ErrStoreUnavailable
		}
		s.logger.Warn("login failed: unknown username")
		return nil, internal.ErrInvalidCredentials
	}

	if u.Password != dto.Password {
		s.logger.Warn("login failed: password mismatch", "user_id", u.ID)
		return nil, internal.ErrInvalidCredentials
	}

	s.logger.Info("login succeeded", "user_id", u.ID, "role", u.Role)

	sanitized := u.Sanitized()
	return &sanitized, nil
}
