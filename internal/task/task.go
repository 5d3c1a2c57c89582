package task

import (
	"errors"
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task is persisted exactly as it appears on the wire. ProjectID, AssignedTo
// and CreatedBy are foreign keys into other collections but are never
// validated against them. Dependencies is carried but unused.
// CompletedDate is set when the status transitions to completed and cleared
// (serialized as null) whenever the status is anything else.
type Task struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	StartDate      string     `json:"startDate"`
	DueDate        string     `json:"dueDate"`
	EstimatedHours float64    `json:"estimatedHours"`
	ActualHours    float64    `json:"actualHours"`
	AssignedTo     string     `json:"assignedTo"`
	CreatedBy      string     `json:"createdBy"`
	Tags           []string   `json:"tags"`
	Dependencies   []string   `json:"dependencies"`
	CompletedDate  *time.Time `json:"completedDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

var ErrNotFound = errors.New("task not found")
