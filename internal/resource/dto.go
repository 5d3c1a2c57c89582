package resource

// CreateResourceDTO carries caller-supplied fields for a new allocation. The
// server assigns id, createdAt and utilizationPercentage; the caller cannot
// set those. UserName is captured from the payload as-is (denormalized).
type CreateResourceDTO struct {
	ProjectID      string  `json:"projectId"`
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName"`
	Role           string  `json:"role"`
	AllocatedHours float64 `json:"allocatedHours"`
	UsedHours      float64 `json:"usedHours"`
	HourlyRate     float64 `json:"hourlyRate"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Status         string  `json:"status"`
}

// UpdateResourceDTO shallow-merges over the stored record: nil keeps the
// stored value, non-nil overwrites. utilizationPercentage is always
// recomputed from the merged hours, never taken from the caller.
type UpdateResourceDTO struct {
	ProjectID      *string  `json:"projectId"`
	UserID         *string  `json:"userId"`
	UserName       *string  `json:"userName"`
	Role           *string  `json:"role"`
	AllocatedHours *float64 `json:"allocatedHours"`
	UsedHours      *float64 `json:"usedHours"`
	HourlyRate     *float64 `json:"hourlyRate"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	Status         *string  `json:"status"`
}

// ApplyTo merges the DTO over an existing record in place.
func (dto UpdateResourceDTO) ApplyTo(res *Resource) {
	if dto.ProjectID != nil {
		res.ProjectID = *dto.ProjectID
	}
	if dto.UserID != nil {
		res.UserID = *dto.UserID
	}
	if dto.UserName != nil {
		res.UserName = *dto.UserName
	}
	if dto.Role != nil {
		res.Role = *dto.Role
	}
	if dto.AllocatedHours != nil {
		res.AllocatedHours = *dto.AllocatedHours
	}
	if dto.UsedHours != nil {
		res.UsedHours = *dto.UsedHours
	}
	if dto.HourlyRate != nil {
		res.HourlyRate = *dto.HourlyRate
	}
	if dto.StartDate != nil {
		res.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		res.EndDate = *dto.EndDate
	}
	if dto.Status != nil {
		res.Status = *dto.Status
	}
}
