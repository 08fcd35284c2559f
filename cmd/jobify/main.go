// Package main is the jobify command line client. It keeps jobs and CV
// records in a local store and talks to the upload server for CV files.
package main

import (
	"fmt"
	"os"

	"jobify-backend/config"
	"jobify-backend/internal/client"
	"jobify-backend/internal/domain"
	"jobify-backend/internal/repository/kv"
	"jobify-backend/internal/usecase"
	"jobify-backend/pkg/kvstore"
	"jobify-backend/pkg/logger"
	"jobify-backend/pkg/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs. It is built once before any command runs.
type app struct {
	cfg   *config.ClientConfig
	api   *client.Client
	jobUC domain.JobUsecase
	cvUC  domain.CVUsecase
}

var (
	current   *app
	serverURL string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:           "jobify",
	Short:         "Track job applications and CVs",
	Long:          "jobify records job applications and CV versions locally and stores CV files on a jobify server.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(serverURL, dataDir)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Upload server URL (overrides JOBIFY_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Local data directory (overrides JOBIFY_DATA_DIR)")
}

func newApp(serverOverride, dataOverride string) (*app, error) {
	cfg := config.LoadClientConfig()
	if serverOverride != "" {
		cfg.ServerURL = serverOverride
	}
	if dataOverride != "" {
		cfg.DataDir = dataOverride
	}
	logger.Init(cfg.LogLevel)

	store, err := kvstore.NewFile(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open data directory: %w", err)
	}

	api := client.New(cfg.ServerURL, nil)
	validate := validation.New()

	return &app{
		cfg:   cfg,
		api:   api,
		jobUC: usecase.NewJobUsecase(kv.NewJobRepository(store), validate),
		cvUC:  usecase.NewCVUsecase(kv.NewCVRepository(store), api, validate),
	}, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
