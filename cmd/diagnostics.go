package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/killallgit/minutes-api/internal/models"
)

// diagnosticsCmd groups the diagnostics store commands
var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Inspect the raw response diagnostics store",
	Long: `Inspect and prune the diagnostics store.

Every exchange with the Gemini API is recorded together with the raw model
response and the classified error, if any.

Available subcommands:
  list    - Show the most recent records
  prune   - Delete records older than a given age`,
}

var diagnosticsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent diagnostics",
	RunE:  runDiagnosticsList,
}

var diagnosticsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old diagnostics",
	RunE:  runDiagnosticsPrune,
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
	diagnosticsCmd.AddCommand(diagnosticsListCmd)
	diagnosticsCmd.AddCommand(diagnosticsPruneCmd)

	diagnosticsListCmd.Flags().Int("limit", 20, "maximum number of records to show")
	diagnosticsListCmd.Flags().Bool("raw", false, "include the raw model response")
	diagnosticsPruneCmd.Flags().Duration("older-than", 7*24*time.Hour, "delete records older than this age")
}

func runDiagnosticsList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	raw, _ := cmd.Flags().GetBool("raw")

	svc, db, err := openDiagnostics(appConfig, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := svc.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No diagnostics recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tWORKSPACE\tSLOT\tMODEL\tOUTCOME\tERROR")
	for _, d := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.CreatedAt.Local().Format(time.DateTime),
			shortID(d.WorkspaceID),
			d.Slot,
			d.ModelID,
			d.Outcome,
			describeError(d))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if raw {
		for _, d := range records {
			if d.RawResponse == "" {
				continue
			}
			fmt.Fprintf(out, "\n--- %s %s ---\n%s\n", d.ID, d.Slot, d.RawResponse)
		}
	}
	return nil
}

func runDiagnosticsPrune(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}

	svc, db, err := openDiagnostics(appConfig, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := svc.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d diagnostic record(s) older than %s\n", deleted, olderThan)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describeError(d models.Diagnostic) string {
	if d.ErrorCode == "" {
		return "-"
	}
	return d.ErrorCode + ": " + d.ErrorMessage
}
