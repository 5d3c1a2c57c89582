package resource_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/resource"
)

// Mock repository for testing
type mockResourceRepository struct {
	resources  []resource.Resource
	storeError error
}

func newMockResourceRepository() *mockResourceRepository {
	return &mockResourceRepository{resources: []resource.Resource{}}
}

func (m *mockResourceRepository) GetAll() ([]resource.Resource, error) {
	if m.storeError != nil {
		return nil, m.storeError
	}
	return m.resources, nil
}

func (m *mockResourceRepository) GetByID(id string) (*resource.Resource, error) {
	if m.storeError != nil {
		return nil, m.storeError
	}
	for i := range m.resources {
		if m.resources[i].ID == id {
			return &m.resources[i], nil
		}
	}
	return nil, resource.ErrNotFound
}

func (m *mockResourceRepository) Insert(res resource.Resource) error {
	if m.storeError != nil {
		return m.storeError
	}
	m.resources = append(m.resources, res)
	return nil
}

func (m *mockResourceRepository) UpdateByID(id string, mutate func(*resource.Resource)) (*resource.Resource, error) {
	if m.storeError != nil {
		return nil, m.storeError
	}
	for i := range m.resources {
		if m.resources[i].ID == id {
			mutate(&m.resources[i])
			clone := m.resources[i]
			return &clone, nil
		}
	}
	return nil, resource.ErrNotFound
}

var _ = Describe("ResourceService", func() {
	var (
		service  *resource.Service
		mockRepo *mockResourceRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockResourceRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = resource.NewService(mockRepo, logger)
	})

	Describe("Utilization", func() {
		It("should be 0 when allocatedHours is 0", func() {
			Expect(resource.Utilization(10, 0)).To(Equal(0))
		})

		It("should round half away from zero", func() {
			Expect(resource.Utilization(60, 120)).To(Equal(50))
			Expect(resource.Utilization(1, 8)).To(Equal(13))
			Expect(resource.Utilization(1, 3)).To(Equal(33))
		})

		It("should exceed 100 when usedHours exceeds allocatedHours", func() {
			Expect(resource.Utilization(150, 100)).To(Equal(150))
		})
	})

	Describe("Create", func() {
		It("should compute utilizationPercentage at write time", func() {
			created, err := service.Create(resource.CreateResourceDTO{
				ProjectID:      "proj-1",
				UserID:         "user-3",
				UserName:       "Sam Okafor",
				AllocatedHours: 120,
				UsedHours:      60,
				HourlyRate:     85,
				Status:         resource.StatusActive,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.UtilizationPercentage).To(Equal(50))
			Expect(created.ID).ToNot(BeEmpty())
			Expect(created.CreatedAt).ToNot(BeZero())
		})

		It("should capture the denormalized user name verbatim", func() {
			created, err := service.Create(resource.CreateResourceDTO{
				UserID:   "user-3",
				UserName: "Stale Name",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.UserName).To(Equal("Stale Name"))
		})
	})

	Describe("Update", func() {
		var existing *resource.Resource

		BeforeEach(func() {
			var err error
			existing, err = service.Create(resource.CreateResourceDTO{
				ProjectID:      "proj-1",
				UserID:         "user-3",
				UserName:       "Sam Okafor",
				AllocatedHours: 100,
				UsedHours:      30,
				HourlyRate:     85,
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should recompute utilizationPercentage from the merged hours", func() {
			used := 75.0
			updated, err := service.Update(existing.ID, resource.UpdateResourceDTO{UsedHours: &used})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.UtilizationPercentage).To(Equal(75))
		})

		It("should preserve id and createdAt", func() {
			role := "Backend Developer"
			updated, err := service.Update(existing.ID, resource.UpdateResourceDTO{Role: &role})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.ID).To(Equal(existing.ID))
			Expect(updated.CreatedAt).To(Equal(existing.CreatedAt))
		})

		Context("when the id is absent", func() {
			It("should return not-found", func() {
				role := "x"
				_, err := service.Update("missing", resource.UpdateResourceDTO{Role: &role})

				Expect(err).To(Equal(internal.ErrResourceNotFound))
			})
		})
	})

	Describe("List", func() {
		It("should filter by project identifier", func() {
			_, err := service.Create(resource.CreateResourceDTO{ProjectID: "proj-1", UserID: "u1"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Create(resource.CreateResourceDTO{ProjectID: "proj-2", UserID: "u2"})
			Expect(err).ToNot(HaveOccurred())

			resources, err := service.List(resource.Filter{ProjectID: "proj-2"})

			Expect(err).ToNot(HaveOccurred())
			Expect(resources).To(HaveLen(1))
			Expect(resources[0].UserID).To(Equal("u2"))
		})
	})
})
