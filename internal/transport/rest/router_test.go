package rest_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/auth"
	"github.com/frahmantamala/project-tracker/internal/project"
	projectStore "github.com/frahmantamala/project-tracker/internal/project/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/report"
	"github.com/frahmantamala/project-tracker/internal/resource"
	resourceStore "github.com/frahmantamala/project-tracker/internal/resource/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/seed"
	"github.com/frahmantamala/project-tracker/internal/task"
	taskStore "github.com/frahmantamala/project-tracker/internal/task/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/transport/rest"
	"github.com/frahmantamala/project-tracker/internal/user"
	userStore "github.com/frahmantamala/project-tracker/internal/user/jsonfile"
	"github.com/go-chi/chi"
	"github.com/spf13/afero"
)

// newTestRouter seeds an in-memory filesystem and mounts the full API
// against it, so every spec exercises the real handler/service/store stack.
func newTestRouter() *chi.Mux {
	fs := afero.NewMemMapFs()
	cfg := internal.StorageConfig{DataDir: "data"}
	lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	Expect(seed.Run(fs, cfg, true, lg)).To(Succeed())

	userRepo := userStore.NewRepository(fs, cfg.CollectionPath("users"))
	projectRepo := projectStore.NewRepository(fs, cfg.CollectionPath("projects"))
	taskRepo := taskStore.NewRepository(fs, cfg.CollectionPath("tasks"))
	resourceRepo := resourceStore.NewRepository(fs, cfg.CollectionPath("resources"))

	userService := user.NewService(userRepo, lg)
	authService := auth.NewService(userRepo, lg)
	projectService := project.NewService(projectRepo, lg)
	taskService := task.NewService(taskRepo, lg)
	resourceService := resource.NewService(resourceRepo, lg)

	handlers := rest.Handlers{
		Auth:     auth.NewHandler(authService),
		User:     user.NewHandler(userService),
		Project:  project.NewHandler(projectService),
		Task:     task.NewHandler(taskService),
		Resource: resource.NewHandler(resourceService),
		Report:   report.NewHandler(projectService, taskService, resourceService),
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, fs, cfg.DataDir, handlers, lg)
	return router
}

func doRequest(router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).ToNot(HaveOccurred())
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]any {
	var payload map[string]any
	Expect(json.Unmarshal(rec.Body.Bytes(), &payload)).To(Succeed())
	return payload
}

func decodeList(rec *httptest.ResponseRecorder) []map[string]any {
	var payload []map[string]any
	Expect(json.Unmarshal(rec.Body.Bytes(), &payload)).To(Succeed())
	return payload
}

var _ = Describe("Router", func() {
	var router *chi.Mux

	BeforeEach(func() {
		router = newTestRouter()
	})

	Describe("health endpoints", func() {
		It("should answer ping", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/ping", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["status"]).To(Equal("OK"))
		})

		It("should report the datastore healthy", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/health", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["status"]).To(Equal("healthy"))
		})
	})

	Describe("POST /login", func() {
		It("should accept seeded credentials and omit the password", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/login", map[string]string{
				"username": "admin",
				"password": "admin123",
			})

			Expect(rec.Code).To(Equal(http.StatusOK))
			body := decodeBody(rec)
			Expect(body["success"]).To(BeTrue())
			Expect(body["message"]).To(Equal("Login successful"))

			u, ok := body["user"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(u["username"]).To(Equal("admin"))
			Expect(u).ToNot(HaveKey("password"))
		})

		It("should reject a wrong password with 401", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/login", map[string]string{
				"username": "admin",
				"password": "nope",
			})

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			body := decodeBody(rec)
			Expect(body["success"]).To(BeFalse())
			Expect(body["message"]).To(Equal("Invalid username or password"))
			Expect(body).ToNot(HaveKey("user"))
		})

		It("should reject an unknown username with the same message", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/login", map[string]string{
				"username": "ghost",
				"password": "admin123",
			})

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeBody(rec)["message"]).To(Equal("Invalid username or password"))
		})

		It("should return 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /users", func() {
		It("should never expose passwords", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/users", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			users := decodeList(rec)
			Expect(users).To(HaveLen(5))
			for _, u := range users {
				Expect(u).ToNot(HaveKey("password"))
			}
		})
	})

	Describe("project lifecycle", func() {
		It("should create, read, update and delete a project", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/projects", map[string]any{
				"name":        "Data Warehouse",
				"description": "Consolidate reporting data",
				"status":      "planning",
				"priority":    "medium",
				"budget":      50000,
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))
			created := decodeBody(rec)
			id, _ := created["id"].(string)
			Expect(id).ToNot(BeEmpty())
			Expect(created["createdAt"]).To(Equal(created["updatedAt"]))

			rec = doRequest(router, http.MethodGet, "/api/v1/projects/"+id, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["name"]).To(Equal("Data Warehouse"))

			rec = doRequest(router, http.MethodPut, "/api/v1/projects/"+id, map[string]any{
				"status": "active",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			updated := decodeBody(rec)
			Expect(updated["status"]).To(Equal("active"))
			Expect(updated["name"]).To(Equal("Data Warehouse"))
			Expect(updated["createdAt"]).To(Equal(created["createdAt"]))

			rec = doRequest(router, http.MethodDelete, "/api/v1/projects/"+id, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["success"]).To(BeTrue())

			rec = doRequest(router, http.MethodGet, "/api/v1/projects/"+id, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 404 when updating an absent project", func() {
			rec := doRequest(router, http.MethodPut, "/api/v1/projects/missing", map[string]any{
				"status": "active",
			})

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("task status transitions", func() {
		It("should stamp completedDate when a task becomes completed and clear it when it leaves", func() {
			rec := doRequest(router, http.MethodPut, "/api/v1/tasks/task-3", map[string]any{
				"status": "completed",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)["completedDate"]).ToNot(BeNil())

			rec = doRequest(router, http.MethodPut, "/api/v1/tasks/task-3", map[string]any{
				"status": "pending",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			body := decodeBody(rec)
			Expect(body).To(HaveKey("completedDate"))
			Expect(body["completedDate"]).To(BeNil())
		})

		It("should filter tasks by projectId", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/tasks?projectId=proj-1", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeList(rec)).To(HaveLen(3))

			rec = doRequest(router, http.MethodGet, "/api/v1/tasks?projectId=proj-2", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeList(rec)).To(BeEmpty())
		})
	})

	Describe("resource allocations", func() {
		It("should compute utilizationPercentage on create", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/resources", map[string]any{
				"projectId":      "proj-2",
				"userId":         "user-3",
				"userName":       "Sam Okafor",
				"allocatedHours": 80,
				"usedHours":      20,
				"hourlyRate":     90,
				"status":         "planned",
			})

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(decodeBody(rec)["utilizationPercentage"]).To(BeEquivalentTo(25))
		})

		It("should not route DELETE", func() {
			rec := doRequest(router, http.MethodDelete, "/api/v1/resources/res-1", nil)

			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("reports", func() {
		It("should aggregate the dashboard from the stored collections", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/reports/dashboard", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			stats := decodeBody(rec)
			Expect(stats["totalProjects"]).To(BeEquivalentTo(2))
			Expect(stats["activeProjects"]).To(BeEquivalentTo(1))
			Expect(stats["totalTasks"]).To(BeEquivalentTo(3))
			Expect(stats["completedTasks"]).To(BeEquivalentTo(1))
			Expect(stats["inProgressTasks"]).To(BeEquivalentTo(1))
			Expect(stats["totalResources"]).To(BeEquivalentTo(1))
			Expect(stats["totalBudget"]).To(BeEquivalentTo(320000))
			Expect(stats["totalSpent"]).To(BeEquivalentTo(45000))
		})

		It("should track totalBudget across create, update and delete", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/projects", map[string]any{
				"name":   "Side Project",
				"status": "active",
				"budget": 10000,
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))
			id, _ := decodeBody(rec)["id"].(string)

			rec = doRequest(router, http.MethodGet, "/api/v1/reports/dashboard", nil)
			stats := decodeBody(rec)
			Expect(stats["totalProjects"]).To(BeEquivalentTo(3))
			Expect(stats["activeProjects"]).To(BeEquivalentTo(2))
			Expect(stats["totalBudget"]).To(BeEquivalentTo(330000))

			rec = doRequest(router, http.MethodPut, "/api/v1/projects/"+id, map[string]any{
				"budget": 25000,
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = doRequest(router, http.MethodGet, "/api/v1/reports/dashboard", nil)
			Expect(decodeBody(rec)["totalBudget"]).To(BeEquivalentTo(345000))

			rec = doRequest(router, http.MethodDelete, "/api/v1/projects/"+id, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = doRequest(router, http.MethodGet, "/api/v1/reports/dashboard", nil)
			stats = decodeBody(rec)
			Expect(stats["totalProjects"]).To(BeEquivalentTo(2))
			Expect(stats["totalBudget"]).To(BeEquivalentTo(320000))
		})

		It("should report per-project progress", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/reports/project-progress/proj-1", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			stats := decodeBody(rec)
			Expect(stats["projectId"]).To(Equal("proj-1"))
			Expect(stats["totalTasks"]).To(BeEquivalentTo(3))
			Expect(stats["completedTasks"]).To(BeEquivalentTo(1))
			Expect(stats["progressPercentage"]).To(BeEquivalentTo(33))
		})

		It("should report zero progress for a project with no tasks", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/reports/project-progress/proj-2", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			stats := decodeBody(rec)
			Expect(stats["totalTasks"]).To(BeEquivalentTo(0))
			Expect(stats["progressPercentage"]).To(BeEquivalentTo(0))
		})
	})
})
