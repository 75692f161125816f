package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/openingbook/internal/httpapi"
)

// openings serve
func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the opening index over HTTP",
		Long: heredoc.Doc(`serve starts a read-only JSON API:

			  GET /v1/opening?fen=FEN              opening at a position
			  GET /v1/opening/name?name=NAME       moves of an opening
			  GET /v1/opening/search?q=Q&limit=N   openings with a similar name
			  GET /v1/stats                        index size

			The index is built before the listener opens.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8007)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	ix := a.index()
	a.log.Info().Int("openings", ix.Len()).Msg("opening index loaded")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      httpapi.NewRouter(a.log.With().Str("component", "http").Logger(), ix),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	a.log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("http server shutdown error")
	}

	a.log.Info().Msg("shutdown complete")
	return nil
}
