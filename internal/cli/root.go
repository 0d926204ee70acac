package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/alexanderramin/studylog/internal/config"
	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/repository"
	"github.com/alexanderramin/studylog/internal/service"
	"github.com/spf13/cobra"
)

// App holds the resolved configuration and the services used by CLI
// commands. Services are wired by Configure once flags are parsed.
type App struct {
	Config    config.Config
	Sessions  service.SessionService
	Reconcile service.ReconcileService
	Status    service.StatusService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// Configure wires repositories and services for cfg. Use-case events go to
// logOut when cfg.Verbose is set.
func (a *App) Configure(cfg config.Config, logOut io.Writer) {
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Verbose {
		observer = service.NewLogUseCaseObserver(logOut)
	}

	logs := repository.NewJSONLogRepo(cfg.LogPath)
	docs := repository.NewTextDocumentRepo(cfg.DocPath)

	a.Config = cfg
	a.Sessions = service.NewSessionServiceWithClock(logs, cfg.Policy, a.now, observer)
	a.Reconcile = service.NewReconcileService(logs, docs, cfg.Policy, observer)
	a.Status = service.NewStatusService(logs, cfg.Policy)
}

// NewRootCmd creates the top-level "studylog" command. cfg is the
// configuration from defaults, file and environment; persistent flags are
// layered over it before any subcommand runs.
func NewRootCmd(app *App, cfg config.Config) *cobra.Command {
	var flags config.Flags

	root := &cobra.Command{
		Use:   "studylog [PART]",
		Short: "Study time tracker for numbered curriculum parts",
		Long: `Records study sessions per part (0, 1, 2...) or subpart (1a, 2b...) in a
JSON log and keeps the "[HH:MM:SS]" totals of the checklist document current.

A bare part argument is a shortcut for "studylog track --part PART".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := flags.Apply(cmd.Flags(), cfg)
			if err != nil {
				return err
			}
			app.Configure(resolved, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runTrack(cmd, app, args[0])
		},
	}
	flags.Register(root.PersistentFlags())

	root.AddCommand(
		newTrackCmd(app),
		newSessionCmd(app),
		newSyncCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newConfigCmd(app),
	)

	return root
}

// normalizePartID lower-cases and trims raw and checks it against the
// identifier grammar of policy.
func normalizePartID(policy domain.AggregationPolicy, raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if err := policy.ValidatePartID(id); err != nil {
		return "", err
	}
	return id, nil
}

// recordAndSync persists one session and then reconciles the document. A
// missing document is reported but does not fail the command: the session
// is already saved.
func recordAndSync(ctx context.Context, out io.Writer, app *App, partID string, start, end int64) error {
	rec, err := app.Sessions.Record(ctx, partID, start, end)
	if err != nil {
		return err
	}

	res, err := app.Reconcile.Reconcile(ctx, service.ReconcileOptions{})
	switch {
	case errors.Is(err, repository.ErrDocumentNotFound):
		fmt.Fprintln(out, formatter.Warn(app.Config.DocPath+" not found."))
	case err != nil:
		return fmt.Errorf("session saved but %s was not updated: %w", app.Config.DocPath, err)
	default:
		fmt.Fprint(out, formatter.FormatReconcile(res, false))
	}

	fmt.Fprintf(out, "Session logged: %s for Part %s\n", formatter.DurationStyled(rec.Duration), formatter.PartLabel(partID))
	return nil
}
