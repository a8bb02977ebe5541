package main

import (
	"io"
	"os"

	"github.com/resource-crud-api/internal/config"
	"github.com/resource-crud-api/internal/repository"
	"github.com/resource-crud-api/internal/service"
	"github.com/resource-crud-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "resource-api",
	Short:         "CRUD HTTP API for users, posts and comments",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default $ENV_FILE or .env)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// app holds the wired components shared by every command
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	repos    *repository.Repositories
	services *service.Services
}

// setup loads configuration and wires storage and services, logging to logOut
func setup(logOut io.Writer) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if envFile != "" {
		cfg, err = config.LoadFile(envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log, logOut)

	repos, err := repository.New(cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Storage initialized")

	return &app{
		cfg:      cfg,
		log:      log,
		repos:    repos,
		services: service.NewServices(repos, log),
	}, nil
}
