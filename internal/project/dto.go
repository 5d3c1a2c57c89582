package project

// CreateProjectDTO carries the caller-supplied fields for a new project. The
// server always assigns id, createdAt and updatedAt; anything the caller
// sends for those is ignored because the DTO simply has no such fields.
type CreateProjectDTO struct {
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
}

// UpdateProjectDTO is an explicit shallow merge: a nil field means "keep the
// stored value", a non-nil field overwrites it wholesale (slices included —
// there is no deep merge). Field precedence: id and createdAt always come
// from the stored record, updatedAt is always refreshed by the server, every
// other field is caller-wins when present.
type UpdateProjectDTO struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	StartDate   *string      `json:"startDate"`
	EndDate     *string      `json:"endDate"`
	Budget      *float64     `json:"budget"`
	BudgetSpent *float64     `json:"budgetSpent"`
	Department  *string      `json:"department"`
	ManagerID   *string      `json:"managerId"`
	TeamMembers *[]string    `json:"teamMembers"`
	Milestones  *[]Milestone `json:"milestones"`
	Risks       *[]Risk      `json:"risks"`
}

// ApplyTo merges the DTO over an existing record in place.
func (dto UpdateProjectDTO) ApplyTo(p *Project) {
	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	if dto.Priority != nil {
		p.Priority = *dto.Priority
	}
	if dto.StartDate != nil {
		p.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		p.EndDate = *dto.EndDate
	}
	if dto.Budget != nil {
		p.Budget = *dto.Budget
	}
	if dto.BudgetSpent != nil {
		p.BudgetSpent = *dto.BudgetSpent
	}
	if dto.Department != nil {
		p.Department = *dto.Department
	}
	if dto.ManagerID != nil {
		p.ManagerID = *dto.ManagerID
	}
	if dto.TeamMembers != nil {
		p.TeamMembers = *dto.TeamMembers
	}
	if dto.Milestones != nil {
		p.Milestones = *dto.Milestones
	}
	if dto.Risks != nil {
		p.Risks = *dto.Risks
	}
}
