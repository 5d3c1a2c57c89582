package resource

import (
	"errors"
	"math"
	"time"
)

const (
	StatusPlanned   = "planned"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Resource is one allocation of a user to a project. UserName is a
// denormalized copy of the user's display name captured at write time; it is
// not kept in sync if the user record later changes. Role is a free-text
// label independent of the user's system role. UsedHours may exceed
// AllocatedHours — the cap is a UI warning, not a stored constraint.
// UtilizationPercentage is computed at write time and never recomputed on
// read. There is no updatedAt.
type Resource struct {
	ID                    string    `json:"id"`
	ProjectID             string    `json:"projectId"`
	UserID                string    `json:"userId"`
	UserName              string    `json:"userName"`
	Role                  string    `json:"role"`
	AllocatedHours        float64   `json:"allocatedHours"`
	UsedHours             float64   `json:"usedHours"`
	HourlyRate            float64   `json:"hourlyRate"`
	StartDate             string    `json:"startDate"`
	EndDate               string    `json:"endDate"`
	UtilizationPercentage int       `json:"utilizationPercentage"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Utilization is round(usedHours/allocatedHours*100) with half rounded away
// from zero, and 0 when allocatedHours is 0. This rounding rule is the
// canonical one; any client-side recomputation must match it.
func Utilization(usedHours, allocatedHours float64) int {
	if allocatedHours == 0 {
		return 0
	}
	return int(math.Round(usedHours / allocatedHours * 100))
}

var ErrNotFound = errors.New("resource allocation not found")
