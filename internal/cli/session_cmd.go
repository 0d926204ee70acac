package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and list study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var part, duration string
	var start, end int64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a finished session without the timer",
		Example: `  studylog session log --part 1a --start 1735689600 --end 1735691400
  studylog session log --part 2 --duration 01:15:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			partID, err := normalizePartID(app.Config.Policy, part)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("duration") {
				secs, err := domain.ParseHMS(duration)
				if err != nil {
					return fmt.Errorf("--duration: %w", err)
				}
				end = app.now().Unix()
				start = end - secs
			}

			return recordAndSync(cmd.Context(), cmd.OutOrStdout(), app, partID, start, end)
		},
	}

	cmd.Flags().StringVarP(&part, "part", "p", "", "Part or subpart identifier (e.g. 0, 1b)")
	cmd.Flags().Int64Var(&start, "start", 0, "Session start, epoch seconds")
	cmd.Flags().Int64Var(&end, "end", 0, "Session end, epoch seconds")
	cmd.Flags().StringVar(&duration, "duration", "", "Session length as HH:MM:SS, ending now")
	_ = cmd.MarkFlagRequired("part")
	cmd.MarkFlagsRequiredTogether("start", "end")
	cmd.MarkFlagsMutuallyExclusive("duration", "start")
	cmd.MarkFlagsMutuallyExclusive("duration", "end")
	cmd.MarkFlagsOneRequired("duration", "start")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Sessions.List(cmd.Context(), strings.ToLower(strings.TrimSpace(part)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No sessions found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatSessions(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&part, "part", "p", "", "Filter by part; a bare number includes its subparts")

	return cmd
}
