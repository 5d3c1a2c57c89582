package project

import (
	"errors"
	"time"
)

const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusOnHold    = "on-hold"
	StatusCompleted = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Milestone struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"`
}

type Risk struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
}

// Project is persisted exactly as it appears on the wire. ManagerID and
// TeamMembers reference the user collection but are never validated against
// it; a dangling reference is rendered as "Unknown User" client-side.
// BudgetSpent may exceed Budget — the cap is a UI warning, not a stored
// constraint.
type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Budget      float64     `json:"budget"`
	BudgetSpent float64     `json:"budgetSpent"`
	Department  string      `json:"department"`
	ManagerID   string      `json:"managerId"`
	TeamMembers []string    `json:"teamMembers"`
	Milestones  []Milestone `json:"milestones"`
	Risks       []Risk      `json:"risks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p *Project) IsActive() bool {
	return p.Status == StatusActive
}

var ErrNotFound = errors.New("project not found")
