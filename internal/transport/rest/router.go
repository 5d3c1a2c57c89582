package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/project-tracker/internal/auth"
	"github.com/frahmantamala/project-tracker/internal/project"
	"github.com/frahmantamala/project-tracker/internal/report"
	"github.com/frahmantamala/project-tracker/internal/resource"
	"github.com/frahmantamala/project-tracker/internal/task"
	"github.com/frahmantamala/project-tracker/internal/transport/middleware"
	"github.com/frahmantamala/project-tracker/internal/transport/swagger"
	"github.com/frahmantamala/project-tracker/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/spf13/afero"
)

// Handlers carries every wired HTTP handler the router mounts.
type Handlers struct {
	Auth     *auth.Handler
	User     *user.Handler
	Project  *project.Handler
	Task     *task.Handler
	Resource *resource.Handler
	Report   *report.Handler
}

// RegisterAllRoutes mounts the whole API under /api/v1. Beyond /login the API
// is deliberately unauthenticated: the server is stateless and never
// re-validates the caller (accepted simplification of the design).
func RegisterAllRoutes(router *chi.Mux, fs afero.Fs, dataDir string, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(fs, dataDir)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Auth != nil {
			r.Post("/login", handlers.Auth.Login)
		}

		if handlers.User != nil {
			r.Route("/users", func(ur chi.Router) {
				ur.Get("/", handlers.User.ListUsers)
				ur.Get("/{id}", handlers.User.GetUser)
			})
		}

		if handlers.Project != nil {
			r.Route("/projects", func(pr chi.Router) {
				pr.Get("/", handlers.Project.ListProjects)
				pr.Post("/", handlers.Project.CreateProject)
				pr.Get("/{id}", handlers.Project.GetProject)
				pr.Put("/{id}", handlers.Project.UpdateProject)
				pr.Delete("/{id}", handlers.Project.DeleteProject)
			})
		}

		if handlers.Task != nil {
			r.Route("/tasks", func(tr chi.Router) {
				tr.Get("/", handlers.Task.ListTasks)
				tr.Post("/", handlers.Task.CreateTask)
				tr.Get("/{id}", handlers.Task.GetTask)
				tr.Put("/{id}", handlers.Task.UpdateTask)
				tr.Delete("/{id}", handlers.Task.DeleteTask)
			})
		}

		if handlers.Resource != nil {
			// No DELETE: allocations are never removed through the API.
			r.Route("/resources", func(rr chi.Router) {
				rr.Get("/", handlers.Resource.ListResources)
				rr.Post("/", handlers.Resource.CreateResource)
				rr.Get("/{id}", handlers.Resource.GetResource)
				rr.Put("/{id}", handlers.Resource.UpdateResource)
			})
		}

		if handlers.Report != nil {
			r.Route("/reports", func(rr chi.Router) {
				rr.Get("/dashboard", handlers.Report.GetDashboard)
				rr.Get("/project-progress/{projectId}", handlers.Report.GetProjectProgress)
			})
		}
	})
}
