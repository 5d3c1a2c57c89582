package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/project-tracker/internal"
	"github.com/frahmantamala/project-tracker/internal/auth"
	"github.com/frahmantamala/project-tracker/internal/project"
	projectStore "github.com/frahmantamala/project-tracker/internal/project/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/report"
	"github.com/frahmantamala/project-tracker/internal/resource"
	resourceStore "github.com/frahmantamala/project-tracker/internal/resource/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/task"
	taskStore "github.com/frahmantamala/project-tracker/internal/task/jsonfile"
	"github.com/frahmantamala/project-tracker/internal/transport/rest"
	"github.com/frahmantamala/project-tracker/internal/user"
	userStore "github.com/frahmantamala/project-tracker/internal/user/jsonfile"
	"github.com/frahmantamala/project-tracker/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Fs       afero.Fs
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.Fs, deps.Config.Storage.DataDir, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr, "data_dir", deps.Config.Storage.DataDir)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	fs := afero.NewOsFs()

	return &Dependencies{
		Config:   config,
		Fs:       fs,
		Router:   chi.NewRouter(),
		Handlers: buildHandlers(fs, config.Storage, lg),
		Logger:   lg,
	}, nil
}

// buildHandlers wires repositories, services and handlers for every entity.
func buildHandlers(fs afero.Fs, storage internal.StorageConfig, lg *slog.Logger) rest.Handlers {
	userRepo := userStore.NewRepository(fs, storage.CollectionPath("users"))
	projectRepo := projectStore.NewRepository(fs, storage.CollectionPath("projects"))
	taskRepo := taskStore.NewRepository(fs, storage.CollectionPath("tasks"))
	resourceRepo := resourceStore.NewRepository(fs, storage.CollectionPath("resources"))

	userService := user.NewService(userRepo, lg)
	authService := auth.NewService(userRepo, lg)
	projectService := project.NewService(projectRepo, lg)
	taskService := task.NewService(taskRepo, lg)
	resourceService := resource.NewService(resourceRepo, lg)

	return rest.Handlers{
		Auth:     auth.NewHandler(authService),
		User:     user.NewHandler(userService),
		Project:  project.NewHandler(projectService),
		Task:     task.NewHandler(taskService),
		Resource: resource.NewHandler(resourceService),
		Report:   report.NewHandler(projectService, taskService, resourceService),
	}
}
