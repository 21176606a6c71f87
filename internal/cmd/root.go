// Package cmd wires the cinerec command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/Digital-Shane/cinerec/internal/config"
	"github.com/Digital-Shane/cinerec/internal/logger"
	"github.com/Digital-Shane/cinerec/internal/metadata/tmdb"
	"github.com/Digital-Shane/cinerec/internal/poster"
	"github.com/Digital-Shane/cinerec/internal/recommend"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cinerec",
	Short: "Movie recommendations from the terminal",
	Long: `cinerec resolves a movie title against TMDB and suggests up to five
related titles: sequels from the same collection, similar movies filtered by
genre and recency, and genre-based popular picks.

A TMDB API key is required, either in ~/.cinerec/config.json or in the
TMDB_API_KEY environment variable (a local .env file is honored).`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the shared logger and engine.
func setup() (*config.Config, zerolog.Logger, *recommend.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   cfg.LogPath,
	})
	if cfg.TMDBAPIKey == "" {
		return nil, log, nil, fmt.Errorf("no TMDB API key configured: set TMDB_API_KEY or tmdb_api_key in the config file")
	}

	api := tmdb.NewAPI(cfg.TMDBAPIKey, cfg.Timeout())
	client, err := tmdb.New(api, cfg.TMDBLanguage)
	if err != nil {
		return nil, log, nil, err
	}
	posters := poster.New(api, cfg.TMDBLanguage)
	engine := recommend.New(client, posters, log, recommend.WithWorkerCount(cfg.WorkerCount))

	return cfg, log, engine, nil
}
