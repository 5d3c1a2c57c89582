package auth

import "github.com/frahmantamala/project-tracker/internal/user"

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the wire contract: on success the user object carries
// no password field.
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *user.User `json:"user,omitempty"`
}
