package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/spf13/cobra"

	"github.com/tubegrab/tubegrab/internal/api"
	"github.com/tubegrab/tubegrab/internal/engine"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := setup()
			if err != nil {
				return err
			}

			dispatcher := engine.NewDispatcher(appCtx)

			e := echo.New()
			api.RegisterRoutes(e, appCtx, dispatcher)

			srv := &http.Server{
				Addr:    appCtx.Config.Addr(),
				Handler: e,
			}

			// Graceful shutdown on Ctrl+C / SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			appCtx.Logger.Info("Listening on %s (artifacts in %s, retention %s)",
				appCtx.Config.Addr(), appCtx.Config.Download.OutDir, appCtx.Janitor.Delay())

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			appCtx.Logger.Info("Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
