package report_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/report"
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/task"
)

var _ = Describe("Dashboard", func() {
	It("should return all-zero stats for empty collections", func() {
		stats := report.Dashboard(nil, nil, nil)

		Expect(stats.TotalProjects).To(Equal(0))
		Expect(stats.ActiveProjects).To(Equal(0))
		Expect(stats.TotalTasks).To(Equal(0))
		Expect(stats.TotalBudget).To(Equal(0.0))
		Expect(stats.TotalSpent).To(Equal(0.0))
	})

	It("should count only active projects as active", func() {
		projects := []project.Project{
			{ID: "p1", Status: project.StatusActive},
			{ID: "p2", Status: project.StatusPlanning},
			{ID: "p3", Status: project.StatusActive},
			{ID: "p4", Status: project.StatusCompleted},
		}

		stats := report.Dashboard(projects, nil, nil)

		Expect(stats.TotalProjects).To(Equal(4))
		Expect(stats.ActiveProjects).To(Equal(2))
	})

	It("should sum budget and budgetSpent across all projects regardless of status", func() {
		projects := []project.Project{
			{ID: "p1", Status: project.StatusActive, Budget: 120000, BudgetSpent: 45000},
			{ID: "p2", Status: project.StatusOnHold, Budget: 30000, BudgetSpent: 5000},
		}

		stats := report.Dashboard(projects, nil, nil)

		Expect(stats.TotalBudget).To(Equal(150000.0))
		Expect(stats.TotalSpent).To(Equal(50000.0))
	})

	It("should count tasks by status", func() {
		tasks := []task.Task{
			{ID: "t1", Status: task.StatusCompleted},
			{ID: "t2", Status: task.StatusInProgress},
			{ID: "t3", Status: task.StatusInProgress},
			{ID: "t4", Status: task.StatusPending},
		}

		stats := report.Dashboard(nil, tasks, nil)

		Expect(stats.TotalTasks).To(Equal(4))
		Expect(stats.CompletedTasks).To(Equal(1))
		Expect(stats.InProgressTasks).To(Equal(2))
	})

	It("should count resource allocations", func() {
		resources := []resource.Resource{{ID: "r1"}, {ID: "r2"}}

		stats := report.Dashboard(nil, nil, resources)

		Expect(stats.TotalResources).To(Equal(2))
	})
})

var _ = Describe("ProjectProgress", func() {
	It("should report 0 percent when the project has no tasks", func() {
		stats := report.ProjectProgress("proj-1", nil)

		Expect(stats.ProjectID).To(Equal("proj-1"))
		Expect(stats.TotalTasks).To(Equal(0))
		Expect(stats.ProgressPercentage).To(Equal(0))
	})

	It("should ignore tasks belonging to other projects", func() {
		tasks := []task.Task{
			{ID: "t1", ProjectID: "proj-1", Status: task.StatusCompleted},
			{ID: "t2", ProjectID: "proj-2", Status: task.StatusCompleted},
		}

		stats := report.ProjectProgress("proj-1", tasks)

		Expect(stats.TotalTasks).To(Equal(1))
		Expect(stats.CompletedTasks).To(Equal(1))
		Expect(stats.ProgressPercentage).To(Equal(100))
	})

	It("should count tasks by status and derive the percentage", func() {
		tasks := []task.Task{
			{ID: "t1", ProjectID: "proj-1", Status: task.StatusCompleted},
			{ID: "t2", ProjectID: "proj-1", Status: task.StatusInProgress},
			{ID: "t3", ProjectID: "proj-1", Status: task.StatusPending},
			{ID: "t4", ProjectID: "proj-1", Status: task.StatusPending},
		}

		stats := report.ProjectProgress("proj-1", tasks)

		Expect(stats.TotalTasks).To(Equal(4))
		Expect(stats.PendingTasks).To(Equal(2))
		Expect(stats.InProgressTasks).To(Equal(1))
		Expect(stats.CompletedTasks).To(Equal(1))
		Expect(stats.ProgressPercentage).To(Equal(25))
	})

	It("should round halves away from zero", func() {
		// 1 of 8 completed is 12.5 percent, rounds to 13
		tasks := make([]task.Task, 0, 8)
		tasks = append(tasks, task.Task{ID: "t0", ProjectID: "proj-1", Status: task.StatusCompleted})
		for i := 1; i < 8; i++ {
			tasks = append(tasks, task.Task{ID: string(rune('a' + i)), ProjectID: "proj-1", Status: task.StatusPending})
		}

		stats := report.ProjectProgress("proj-1", tasks)

		Expect(stats.ProgressPercentage).To(Equal(13))
	})
})

var _ = Describe("ResourceCost", func() {
	It("should be 0 for no allocations", func() {
		Expect(report.ResourceCost(nil)).To(Equal(0.0))
	})

	It("should sum usedHours times hourlyRate", func() {
		resources := []resource.Resource{
			{ID: "r1", UsedHours: 60, HourlyRate: 85},
			{ID: "r2", UsedHours: 10, HourlyRate: 100},
		}

		Expect(report.ResourceCost(resources)).To(Equal(6100.0))
	})
})
