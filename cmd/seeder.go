package cmd

import (
	"log"

	"github.com/frahmantamala/project-tracker/internal/seed"
	"github.com/frahmantamala/project-tracker/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the data directory with sample collections",
	Long:  `Write sample users, projects, tasks and resource allocations for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)
		lg := logger.LoggerWrapper()

		if err := seed.Run(afero.NewOsFs(), cfg.Storage, clearData, lg); err != nil {
			log.Fatalf("failed to seed data: %v", err)
		}

		lg.Info("seed complete", "data_dir", cfg.Storage.DataDir)
	},
}
