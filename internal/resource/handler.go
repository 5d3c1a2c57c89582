package resource

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/project-tracker/internal/transport"
	"github.com/frahmantamala/project-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(filter Filter) ([]Resource, error)
	GetByID(id string) (*Resource, error)
	Create(dto CreateResourceDTO) (*Resource, error)
	Update(id string, dto UpdateResourceDTO) (*Resource, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// ListResources supports the optional ?projectId= query filter.
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	filter := Filter{ProjectID: r.URL.Query().Get("projectId")}

	resources, err := h.Service.List(filter)
	if err != nil {
		h.Logger.Error("ListResources: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resources)
}

func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetResource: service error", "error", err, "resource_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var dto CreateResourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateResource: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateResource: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateResourceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateResource: invalid request body", "error", err, "resource_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("UpdateResource: service error", "error", err, "resource_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, res)
}
