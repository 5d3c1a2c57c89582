package report

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/task"
	"github.com/frahmantamala/project-tracker/internal/transport"
	"github.com/frahmantamala/project-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

// The handler loads full collections through the entity services and feeds
// them to the pure aggregation functions. Nothing is cached between requests.

type ProjectLister interface {
	List() ([]project.Project, error)
}

type TaskLister interface {
	List(filter task.Filter) ([]task.Task, error)
}

type ResourceLister interface {
	List(filter resource.Filter) ([]resource.Resource, error)
}

type Handler struct {
	*transport.BaseHandler
	Projects  ProjectLister
	Tasks     TaskLister
	Resources ResourceLister
}

func NewHandler(projects ProjectLister, tasks TaskLister, resources ResourceLister) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Projects:    projects,
		Tasks:       tasks,
		Resources:   resources,
	}
}

// GetDashboard handles GET /reports/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List()
	if err != nil {
		h.Logger.Error("GetDashboard: failed to load projects", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	tasks, err := h.Tasks.List(task.Filter{})
	if err != nil {
		h.Logger.Error("GetDashboard: failed to load tasks", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	resources, err := h.Resources.List(resource.Filter{})
	if err != nil {
		h.Logger.Error("GetDashboard: failed to load resources", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, Dashboard(projects, tasks, resources))
}

// GetProjectProgress handles GET /reports/project-progress/{projectId}. An
// unknown project id simply yields zero counts; the id is never validated.
func (h *Handler) GetProjectProgress(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")

	tasks, err := h.Tasks.List(task.Filter{})
	if err != nil {
		h.Logger.Error("GetProjectProgress: failed to load tasks", "error", err, "project_id", projectID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProjectProgress(projectID, tasks))
}
