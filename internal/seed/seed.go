// Package seed writes the initial JSON collections. Users exist only as seed
// data: there is no create-user endpoint, so a fresh deployment must run the
// seeder before logins can succeed.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/storage/jsonstore"
	"github.com/frahmantamala/project-tracker/internal/task"
	"github.com/frahmantamala/project-tracker/internal/user"
	"github.com/spf13/afero"
)

// Run writes the seed collections under cfg.DataDir. Existing collection
// files are left untouched unless clear is set.
func Run(fs afero.Fs, cfg internal.StorageConfig, clear bool, logger *slog.Logger) error {
	now := time.Now().UTC()

	if err := seedCollection(fs, cfg.CollectionPath("users"), Users(), clear, logger); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedCollection(fs, cfg.CollectionPath("projects"), Projects(now), clear, logger); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := seedCollection(fs, cfg.CollectionPath("tasks"), Tasks(now), clear, logger); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if err := seedCollection(fs, cfg.CollectionPath("resources"), Resources(now), clear, logger); err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}

	return nil
}

func seedCollection[T any](fs afero.Fs, path string, records []T, clear bool, logger *slog.Logger) error {
	if !clear {
		if exists, _ := afero.Exists(fs, path); exists {
			logger.Info("collection already exists, skipping", "path", path)
			return nil
		}
	}

	if err := jsonstore.New[T](fs, path).WriteAll(records); err != nil {
		return err
	}

	logger.Info("collection seeded", "path", path, "records", len(records))
	return nil
}

// Users returns one account per role. Passwords are stored in plain text by
// design; this dataset is for development and demos, not production secrets.
func Users() []user.User {
	return []user.User{
		{ID: "user-1", Username: "admin", Password: "admin123", Name: "Alex Rivera", Role: user.RoleAdmin, Avatar: "🛠️"},
		{ID: "user-2", Username: "pm", Password: "pm123", Name: "Dana Kim", Role: user.RoleProjectManager, Avatar: "📋"},
		{ID: "user-3", Username: "dev", Password: "dev123", Name: "Sam Okafor", Role: user.RoleTeamMember, Avatar: "💻"},
		{ID: "user-4", Username: "head", Password: "head123", Name: "Priya Nair", Role: user.RoleDepartmentHead, Avatar: "🏢"},
		{ID: "user-5", Username: "exec", Password: "exec123", Name: "Jordan Lee", Role: user.RoleExecutive, Avatar: "📈"},
	}
}

func Projects(now time.Time) []project.Project {
	return []project.Project{
		{
			ID:          "proj-1",
			Name:        "Website Redesign",
			Description: "Refresh the public site and unify the design system",
			Status:      project.StatusActive,
			Priority:    project.PriorityHigh,
			StartDate:   "2026-01-05",
			EndDate:     "2026-06-30",
			Budget:      120000,
			BudgetSpent: 45000,
			Department:  "Engineering",
			ManagerID:   "user-2",
			TeamMembers: []string{"user-3"},
			Milestones: []project.Milestone{
				{Name: "Design handoff", DueDate: "2026-02-15", Status: "completed"},
				{Name: "Beta launch", DueDate: "2026-05-01", Status: "pending"},
			},
			Risks: []project.Risk{
				{Description: "Legacy CMS migration may slip", Severity: "medium", Status: "open"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "proj-2",
			Name:        "Mobile App MVP",
			Description: "First release of the customer mobile app",
			Status:      project.StatusPlanning,
			Priority:    project.PriorityMedium,
			StartDate:   "2026-03-01",
			EndDate:     "2026-09-30",
			Budget:      200000,
			BudgetSpent: 0,
			Department:  "Product",
			ManagerID:   "user-2",
			TeamMembers: []string{"user-3"},
			Milestones:  []project.Milestone{},
			Risks:       []project.Risk{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func Tasks(now time.Time) []task.Task {
	completed := now
	return []task.Task{
		{
			ID:             "task-1",
			ProjectID:      "proj-1",
			Title:          "Audit current pages",
			Description:    "Inventory templates and components on the existing site",
			Status:         task.StatusCompleted,
			Priority:       "high",
			StartDate:      "2026-01-05",
			DueDate:        "2026-01-20",
			EstimatedHours: 16,
			ActualHours:    14,
			AssignedTo:     "user-3",
			CreatedBy:      "user-2",
			Tags:           []string{"design", "audit"},
			Dependencies:   []string{},
			CompletedDate:  &completed,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             "task-2",
			ProjectID:      "proj-1",
			Title:          "Build component library",
			Description:    "Implement the shared component set from the new design system",
			Status:         task.StatusInProgress,
			Priority:       "high",
			StartDate:      "2026-01-21",
			DueDate:        "2026-03-15",
			EstimatedHours: 80,
			ActualHours:    35,
			AssignedTo:     "user-3",
			CreatedBy:      "user-2",
			Tags:           []string{"frontend"},
			Dependencies:   []string{"task-1"},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             "task-3",
			ProjectID:      "proj-1",
			Title:          "Content migration plan",
			Description:    "Map legacy CMS content onto the new structure",
			Status:         task.StatusPending,
			Priority:       "medium",
			StartDate:      "2026-02-01",
			DueDate:        "2026-04-01",
			EstimatedHours: 24,
			ActualHours:    0,
			AssignedTo:     "user-3",
			CreatedBy:      "user-2",
			Tags:           []string{"content"},
			Dependencies:   []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

func Resources(now time.Time) []resource.Resource {
	return []resource.Resource{
		{
			ID:                    "res-1",
			ProjectID:             "proj-1",
			UserID:                "user-3",
			UserName:              "Sam Okafor",
			Role:                  "Frontend Developer",
			AllocatedHours:        120,
			UsedHours:             60,
			HourlyRate:            85,
			StartDate:             "2026-01-05",
			EndDate:               "2026-06-30",
			UtilizationPercentage: resource.Utilization(60, 120),
			Status:                resource.StatusActive,
			CreatedAt:             now,
		},
	}
}
