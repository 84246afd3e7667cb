package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/minutes-api/internal/database"
	"github.com/killallgit/minutes-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the diagnostics database schema",
	Long: `Manage the schema of the diagnostics database.

The server applies the schema on startup; these commands allow doing it
ahead of time or inspecting the current state.

Available subcommands:
  up      - Create or update the diagnostics table
  down    - Drop the diagnostics table
  status  - Show whether the schema is applied`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the diagnostics schema",
	RunE:  runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the diagnostics table",
	Long: `Drop the diagnostics table and every record in it.

Asks for confirmation unless --yes is given.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openDatabase() (*database.DB, error) {
	if appConfig.Database.Path == "" {
		return nil, fmt.Errorf("database.path is not configured")
	}
	return database.Initialize(appConfig.Database.Path, appConfig.Database.Verbose, logger.Named("database"))
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintf(out, "Dry run: would migrate table %q in %s\n", models.Diagnostic{}.TableName(), appConfig.Database.Path)
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Diagnostic{}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated table %q\n", models.Diagnostic{}.TableName())
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()
	table := models.Diagnostic{}.TableName()

	if dryRun {
		fmt.Fprintf(out, "Dry run: would drop table %q in %s\n", table, appConfig.Database.Path)
		return nil
	}

	// Confirmation prompt for destructive action
	if !yes {
		fmt.Fprintf(out, "WARNING: This will drop table %q and all its records. Continue? (y/N): ", table)
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		if !strings.EqualFold(response, "y") {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrator().DropTable(&models.Diagnostic{}); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	fmt.Fprintf(out, "Dropped table %q\n", table)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Database: %s\n", appConfig.Database.Path)

	status := "pending"
	if db.Migrator().HasTable(&models.Diagnostic{}) {
		status = "applied"
	}
	fmt.Fprintf(out, "Table %-20s %s\n", models.Diagnostic{}.TableName(), status)
	return nil
}
