package resource

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/pkg/idgen"
)

// Repository defines the data access methods for resource allocations. There
// is no Delete: allocations are never removed through the API.
type Repository interface {
	GetAll() ([]Resource, error)
	GetByID(id string) (*Resource, error)
	Insert(res Resource) error
	UpdateByID(id string, mutate func(*Resource)) (*Resource, error)
}

// Filter narrows List results. Zero value means no filtering.
type Filter struct {
	ProjectID string
}

// Service handles resource-allocation business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(filter Filter) ([]Resource, error) {
	resources, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list resources", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	if filter.ProjectID == "" {
		return resources, nil
	}

	matched := make([]Resource, 0, len(resources))
	for _, res := range resources {
		if res.ProjectID == filter.ProjectID {
			matched = append(matched, res)
		}
	}

	return matched, nil
}

func (s *Service) GetByID(id string) (*Resource, error) {
	res, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("resource store unavailable", "error", err, "resource_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrResourceNotFound
	}
	return res, nil
}

// Create stores a new allocation. utilizationPercentage is derived from the
// supplied hours at write time; the user's display name is captured from the
// payload and not joined against the user collection.
func (s *Service) Create(dto CreateResourceDTO) (*Resource, error) {
	res := Resource{
		ID:                    idgen.NewID(),
		ProjectID:             dto.ProjectID,
		UserID:                dto.UserID,
		UserName:              dto.UserName,
		Role:                  dto.Role,
		AllocatedHours:        dto.AllocatedHours,
		UsedHours:             dto.UsedHours,
		HourlyRate:            dto.HourlyRate,
		StartDate:             dto.StartDate,
		EndDate:               dto.EndDate,
		UtilizationPercentage: Utilization(dto.UsedHours, dto.AllocatedHours),
		Status:                dto.Status,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.repo.Insert(res); err != nil {
		s.logger.Error("failed to create resource", "error", err)
		return nil, internal.ErrStoreUnavailable
	}

	s.logger.Info("resource allocation created",
		"resource_id", res.ID,
		"project_id", res.ProjectID,
		"user_id", res.UserID)

	return &res, nil
}

// Update shallow-merges the DTO over the stored record and recomputes
// utilizationPercentage from the merged hours. id and createdAt always
// survive; allocations carry no updatedAt.
func (s *Service) Update(id string, dto UpdateResourceDTO) (*Resource, error) {
	updated, err := s.repo.UpdateByID(id, func(res *Resource) {
		dto.ApplyTo(res)
		res.UtilizationPercentage = Utilization(res.UsedHours, res.AllocatedHours)
	})
	if err != nil {
		if errors.Is(err, jsonstore.ErrUnavailable) {
			s.logger.Error("resource store unavailable", "error", err, "resource_id", id)
			return nil, internal.ErrStoreUnavailable
		}
		return nil, internal.ErrResourceNotFound
	}

	s.logger.Info("resource allocation updated", "resource_id", id)
	return updated, nil
}
