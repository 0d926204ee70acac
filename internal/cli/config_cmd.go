package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			source := cfg.Source
			if source == "" {
				source = formatter.Dim("(none)")
			}
			rows := [][]string{
				{"log", cfg.LogPath},
				{"document", cfg.DocPath},
				{"policy", cfg.Policy.String()},
				{"verbose", strconv.FormatBool(cfg.Verbose)},
				{"config file", source},
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Configuration", formatter.RenderTable([]string{"KEY", "VALUE"}, rows)))
			return nil
		},
	}
}
