package task

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/pkg/idgen"
)

// Repository defines the data access methods for tasks.
type Repository interface {
	GetAll() ([]Task, error)
	GetByID(id string) (*Task, error)
	Insert(t Task) error
	UpdateByID(id string, mutate func(*Task)) (*Task, error)
	Delete(id string) error
}

// Filter narrows List results. Zero value means no filtering.
type Filter struct {
	ProjectID string
}

// Service handles task business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List reads the full collection, then applies the filter predicate
// in memory. No pagination.
func (s *Service) List(filter Filter) ([]Task, error) {
	tasks, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	if filter.ProjectID == "" {
		return tasks, nil
	}

	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == filter.ProjectID {
			matched = append(matched, t)
		}
	}

	return matched, nil
}

func (s *Service) GetByID(id string) (*Task, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("task store unavailable", "error", err, "task_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrTaskNotFound
	}
	return t, nil
}

// Create stores a new task with server-assigned id and timestamps. A task
// created directly in completed status gets its completedDate stamped too.
func (s *Service) Create(dto CreateTaskDTO) (*Task, error) {
	now := time.Now().UTC()

	t := Task{
		ID:             idgen.NewID(),
		ProjectID:      dto.ProjectID,
		Title:          dto.Title,
		Description:    dto.Description,
		Status:         dto.Status,
		Priority:       dto.Priority,
		StartDate:      dto.StartDate,
		DueDate:        dto.DueDate,
		EstimatedHours: dto.EstimatedHours,
		ActualHours:    dto.ActualHours,
		AssignedTo:     dto.AssignedTo,
		CreatedBy:      dto.CreatedBy,
		Tags:           dto.Tags,
		Dependencies:   dto.Dependencies,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if t.Status == StatusCompleted {
		completed := now
		t.CompletedDate = &completed
	}

	if err := s.repo.Insert(t); err != nil {
		s.logger.Error("failed to create task", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	s.logger.Info("task created", "task_id", t.ID, "project_id", t.ProjectID)
	return &t, nil
}

// Update shallow-merges the DTO over the stored record, preserving id and
// createdAt and refreshing updatedAt. completedDate follows the merged
// status: stamped on the transition into completed, nulled on any other
// status.
func (s *Service) Update(id string, dto UpdateTaskDTO) (*Task, error) {
	updated, err := s.repo.UpdateByID(id, func(t *Task) {
		dto.ApplyTo(t)

		now := time.Now().UTC()
		t.UpdatedAt = now

		if t.Status == StatusCompleted {
			if t.CompletedDate == nil {
				completed := now
				t.CompletedDate = &completed
			}
		} else {
			t.CompletedDate = nil
		}
	})
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("task store unavailable", "error", err, "task_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrTaskNotFound
	}

	s.logger.Info("task updated", "task_id", id, "status", updated.Status)
	return updated, nil
}

func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("task store unavailable", "error", err, "task_id", id)
			return internal.ErrStoreUnavailable
		}
		return internal.ErrTaskNotFound
	}

	s.logger.Info("task deleted", "task_id", id)
	return nil
}
