package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// modelsCmd prints the selectable model catalog
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the selectable models",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := catalogFromConfig(appConfig.Models)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDEFAULT")
		for _, m := range catalog.Models {
			def := ""
			if m.ID == catalog.Default {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, def)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
