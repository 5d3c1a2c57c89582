package task

// CreateTaskDTO carries caller-supplied fields for a new task; id, createdAt,
// updatedAt and completedDate are server-assigned and cannot be overridden.
type CreateTaskDTO struct {
	ProjectID      string   `json:"projectId"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	StartDate      string   `json:"startDate"`
	DueDate        string   `json:"dueDate"`
	EstimatedHours float64  `json:"estimatedHours"`
	ActualHours    float64  `json:"actualHours"`
	AssignedTo     string   `json:"assignedTo"`
	CreatedBy      string   `json:"createdBy"`
	Tags           []string `json:"tags"`
	Dependencies   []string `json:"dependencies"`
}

// UpdateTaskDTO shallow-merges over the stored record: nil keeps the stored
// value, non-nil overwrites wholesale (slices are replaced, never merged).
type UpdateTaskDTO struct {
	ProjectID      *string   `json:"projectId"`
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Status         *string   `json:"status"`
	Priority       *string   `json:"priority"`
	StartDate      *string   `json:"startDate"`
	DueDate        *string   `json:"dueDate"`
	EstimatedHours *float64  `json:"estimatedHours"`
	ActualHours    *float64  `json:"actualHours"`
	AssignedTo     *string   `json:"assignedTo"`
	CreatedBy      *string   `json:"createdBy"`
	Tags           *[]string `json:"tags"`
	Dependencies   *[]string `json:"dependencies"`
}

// ApplyTo merges the DTO over an existing record in place.
func (dto UpdateTaskDTO) ApplyTo(t *Task) {
	if dto.ProjectID != nil {
		t.ProjectID = *dto.ProjectID
	}
	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Status != nil {
		t.Status = *dto.Status
	}
	if dto.Priority != nil {
		t.Priority = *dto.Priority
	}
	if dto.StartDate != nil {
		t.StartDate = *dto.StartDate
	}
	if dto.DueDate != nil {
		t.DueDate = *dto.DueDate
	}
	if dto.EstimatedHours != nil {
		t.EstimatedHours = *dto.EstimatedHours
	}
	if dto.ActualHours != nil {
		t.ActualHours = *dto.ActualHours
	}
	if dto.AssignedTo != nil {
		t.AssignedTo = *dto.AssignedTo
	}
	if dto.CreatedBy != nil {
		t.CreatedBy = *dto.CreatedBy
	}
	if dto.Tags != nil {
		t.Tags = *dto.Tags
	}
	if dto.Dependencies != nil {
		t.Dependencies = *dto.Dependencies
	}
}
