// Package report computes derived statistics over already-loaded collections.
// Every function here is pure: no store access, no caching, recomputed on
// each call. Percentages round half away from zero (math.Round); client-side
// recomputations must use the same rule.
package report

import (
	"math"

	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/task"
)

// DashboardStats is the payload of GET /reports/dashboard.
type DashboardStats struct {
	TotalProjects   int     `json:"totalProjects"`
	ActiveProjects  int     `json:"activeProjects"`
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	InProgressTasks int     `json:"inProgressTasks"`
	TotalResources  int     `json:"totalResources"`
	TotalBudget     float64 `json:"totalBudget"`
	TotalSpent      float64 `json:"totalSpent"`
}

// ProgressStats is the payload of GET /reports/project-progress/{projectId}.
type ProgressStats struct {
	ProjectID          string `json:"projectId"`
	TotalTasks         int    `json:"totalTasks"`
	PendingTasks       int    `json:"pendingTasks"`
	InProgressTasks    int    `json:"inProgressTasks"`
	CompletedTasks     int    `json:"completedTasks"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// Dashboard aggregates counts and budget sums across all collections. A
// zero-valued budget field contributes 0, so records missing those fields on
// disk are counted but add nothing.
func Dashboard(projects []project.Project, tasks []task.Task, resources []resource.Resource) DashboardStats {
	stats := DashboardStats{
		TotalProjects:  len(projects),
		TotalTasks:     len(tasks),
		TotalResources: len(resources),
	}

	for _, p := range projects {
		if p.IsActive() {
			stats.ActiveProjects++
		}
		stats.TotalBudget += p.Budget
		stats.TotalSpent += p.BudgetSpent
	}

	for _, t := range tasks {
		switch t.Status {
		case task.StatusCompleted:
			stats.CompletedTasks++
		case task.StatusInProgress:
			stats.InProgressTasks++
		}
	}

	return stats
}

// ProjectProgress counts one project's tasks by status and derives the
// completion percentage, defined as 0 when the project has no tasks.
func ProjectProgress(projectID string, tasks []task.Task) ProgressStats {
	stats := ProgressStats{ProjectID: projectID}

	for _, t := range tasks {
		if t.ProjectID != projectID {
			continue
		}
		stats.TotalTasks++
		switch t.Status {
		case task.StatusPending:
			stats.PendingTasks++
		case task.StatusInProgress:
			stats.InProgressTasks++
		case task.StatusCompleted:
			stats.CompletedTasks++
		}
	}

	stats.ProgressPercentage = roundPercentage(float64(stats.CompletedTasks), float64(stats.TotalTasks))
	return stats
}

// ResourceCost sums usedHours x hourlyRate over the given allocations.
func ResourceCost(resources []resource.Resource) float64 {
	var total float64
	for _, res := range resources {
		total += res.UsedHours * res.HourlyRate
	}
	return total
}

func roundPercentage(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}
