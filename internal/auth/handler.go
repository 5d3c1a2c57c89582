package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/transport"
	"github.com/frahmantamala/project-tracker/internal/user"
	"github.com/frahmantamala/project-tracker/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*user.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Authenticate(dto)
	if err != nil {
		switch err {
		case internal.ErrInvalidCredentials:
			h.WriteJSON(w, http.StatusUnauthorized, LoginResponse{
				Success: false,
				Message: "Invalid username or password",
			})
		case internal.ErrStoreUnavailable:
			h.HandleServiceError(w, err)
		default:
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    u,
	})
}
