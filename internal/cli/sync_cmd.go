package cli

import (
	"fmt"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/alexanderramin/studylog/internal/service"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Rewrite the document totals from the session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Reconcile.Reconcile(cmd.Context(), service.ReconcileOptions{DryRun: dryRun})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReconcile(res, dryRun))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the lines that would change without writing")

	return cmd
}
