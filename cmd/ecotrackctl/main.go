// Package main is the EcoTrack operations CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ecotrack/backend/config"
	"github.com/ecotrack/backend/internal/infra/db"
)

var (
	driverFlag string
	dsnFlag    string
	rootCmd    = &cobra.Command{
		Use:           "ecotrackctl",
		Short:         "Operations CLI for the EcoTrack backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "Database driver, postgres or sqlite (defaults to DATABASE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "Database URL (defaults to DATABASE_URL)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase connects with the environment config, overridden by flags.
func openDatabase() (*db.Database, error) {
	cfg := config.Load()
	if driverFlag != "" {
		cfg.Database.Driver = driverFlag
	}
	if dsnFlag != "" {
		cfg.Database.URL = dsnFlag
	}
	return db.NewConnection(&cfg.Database)
}
