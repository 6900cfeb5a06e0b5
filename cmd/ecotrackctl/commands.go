package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/application/usecase/report"
	"github.com/ecotrack/backend/internal/integration/cache"
	"github.com/ecotrack/backend/internal/integration/entrypoint/dto"
	"github.com/ecotrack/backend/internal/integration/persistence"
)

func init() {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()
			if err := database.Migrate(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
	rootCmd.AddCommand(migrateCmd)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the default categories, activities and recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()
			if err := database.Migrate(); err != nil {
				return err
			}
			if err := persistence.NewCatalogSeeder(database.DB()).Seed(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "catalog seeded")
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)

	var top int
	reportCmd := &cobra.Command{
		Use:   "report USER",
		Short: "Print the impact report of a user, given by ID or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close()
			return runReport(cmd.Context(), database.DB(), args[0], top, cmd.OutOrStdout())
		},
	}
	reportCmd.Flags().IntVarP(&top, "top", "n", report.DefaultOptions().DefaultTopN, "Number of top contributing activities")
	rootCmd.AddCommand(reportCmd)
}

// runReport computes the report straight from the database, bypassing the
// cache, and writes it as indented JSON.
func runReport(ctx context.Context, db *gorm.DB, userRef string, top int, w io.Writer) error {
	userID, err := resolveUser(ctx, db, userRef)
	if err != nil {
		return err
	}

	uc := report.NewGetImpactReportUseCase(
		persistence.NewFootprintRepository(db),
		cache.NewNoopReportCache(),
		report.DefaultOptions(),
	)
	output, err := uc.Execute(ctx, report.GetImpactReportInput{UserID: userID, TopN: &top})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToImpactReportResponse(output))
}

func resolveUser(ctx context.Context, db *gorm.DB, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	if !strings.Contains(ref, "@") {
		return uuid.Nil, errors.New("user must be a UUID or an email address")
	}
	user, err := persistence.NewUserRepository(db).FindByEmail(ctx, ref)
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup %s: %w", ref, err)
	}
	return user.ID, nil
}

