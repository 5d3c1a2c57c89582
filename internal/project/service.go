package project

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/pkg/idgen"
)

// Repository defines the data access methods for projects.
type Repository interface {
	GetAll() ([]Project, error)
	GetByID(id string) (*Project, error)
	Insert(p Project) error
	UpdateByID(id string, mutate func(*Project)) (*Project, error)
	Delete(id string) error
}

// Service handles project business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the full collection in insertion order. No pagination.
func (s *Service) List() ([]Project, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, internal.ErrStoreUnavailable
	}
	return projects, nil
}

func (s *Service) GetByID(id string) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("project store unavailable", "error", err, "project_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrProjectNotFound
	}
	return p, nil
}

// Create stores a new project. Identifier and timestamps are always
// server-assigned; createdAt equals updatedAt on a fresh record.
func (s *Service) Create(dto CreateProjectDTO) (*Project, error) {
	now := time.Now().UTC()

	p := Project{
		ID:          idgen.NewID(),
		Name:        dto.Name,
		Description: dto.Description,
		Status:      dto.Status,
		Priority:    dto.Priority,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Budget:      dto.Budget,
		BudgetSpent: dto.BudgetSpent,
		Department:  dto.Department,
		ManagerID:   dto.ManagerID,
		TeamMembers: dto.TeamMembers,
		Milestones:  dto.Milestones,
		Risks:       dto.Risks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(p); err != nil {
		s.logger.Error("failed to create project", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.Name)
	return &p, nil
}

// Update shallow-merges the DTO over the stored record. The stored id and
// createdAt always survive; updatedAt is refreshed unconditionally.
func (s *Service) Update(id string, dto UpdateProjectDTO) (*Project, error) {
	updated, err := s.repo.UpdateByID(id, func(p *Project) {
		dto.ApplyTo(p)
		p.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("project store unavailable", "error", err, "project_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrProjectNotFound
	}

	s.logger.Info("project updated", "project_id", id)
	return updated, nil
}

// Delete removes a project. Tasks and resource allocations referencing it are
// left in place; their projectId simply dangles (documented limitation).
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("project store unavailable", "error", err, "project_id", id)
			return internal.ErrStoreUnavailable
		}
		return internal.ErrProjectNotFound
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}
