package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/studylog/internal/cli/formatter"
	"github.com/alexanderramin/studylog/internal/repository"
	"github.com/alexanderramin/studylog/internal/service"
	"github.com/alexanderramin/studylog/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-sync the document whenever the session log changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fw, err := watch.NewFileWatcher(app.Config.LogPath, debounce)
			if err != nil {
				return err
			}
			defer fw.Close()
			go fw.Run(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Watching %s (ctrl+c to stop)", fw.Path())))

			syncOnce := func() {
				res, err := app.Reconcile.Reconcile(ctx, service.ReconcileOptions{})
				switch {
				case errors.Is(err, repository.ErrDocumentNotFound):
					fmt.Fprintln(out, formatter.Warn(app.Config.DocPath+" not found."))
				case err != nil:
					fmt.Fprintln(out, formatter.Warn(err.Error()))
				default:
					fmt.Fprint(out, formatter.FormatReconcile(res, false))
				}
			}
			syncOnce()

			for {
				select {
				case _, ok := <-fw.Changes():
					if !ok {
						return nil
					}
					syncOnce()
				case err := <-fw.Errors():
					fmt.Fprintln(out, formatter.Warn("watch: "+err.Error()))
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before a burst of writes triggers a sync")

	return cmd
}
