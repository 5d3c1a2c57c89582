package user

import "errors"

// Roles a user can hold. Roles are descriptive only; no endpoint checks them
// server-side.
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleTeamMember     = "team_member"
	RoleDepartmentHead = "department_head"
	RoleExecutive      = "executive"
)

// User is a seed-only record: created out-of-band, never mutated or deleted
// through the API. The password is stored in plain text in the collection
// file and compared by exact match at login.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// Sanitized returns a copy safe for API responses: the password field is
// cleared and, being omitempty, disappears from the serialized object.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

var ErrNotFound = errors.New("user not found")
