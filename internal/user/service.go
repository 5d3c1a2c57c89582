package user

import (
	"errors"
	"log/slog"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
)

// Repository defines the data access methods for users.
type Repository interface {
	GetAll() ([]User, error)
	GetByID(id string) (*User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every user with the password stripped.
func (s *Service) List() ([]User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	sanitized := make([]User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}

	return sanitized, nil
}

// GetByID returns one user with the password stripped.
func (s *Service) GetByID(id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("user store unavailable", "error", err, "user_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrUserNotFound
	}

	sanitized := u.Sanitized()
	return &sanitized, nil
}
