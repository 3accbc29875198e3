package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cspzone/docs-service/internal/auth"
	httphandler "github.com/cspzone/docs-service/internal/http"
	"github.com/cspzone/docs-service/internal/http/middleware"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rt.open()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), a)
		},
	}
}

func serve(parent context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokenParser := auth.NewParser(a.cfg.Auth.AccessSecret)
	if !tokenParser.Enabled() {
		a.log.Warn().Msg("JWT_ACCESS_SECRET is empty, authentication disabled")
	}
	handler := httphandler.NewHandler(httphandler.Services{
		Clients:    a.clients,
		Quotations: a.quotations,
		Invoices:   a.invoices,
		Documents:  a.documents,
		Reports:    a.reports,
	}, a.log)
	router := httphandler.NewRouter(handler, middleware.Auth(tokenParser), httphandler.RouterConfig{
		Environment: a.cfg.Environment,
		CORSOrigins: a.cfg.HTTP.CORSOrigins,
	}, a.log)

	addr := fmt.Sprintf("%s:%d", a.cfg.HTTP.Host, a.cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", addr).Msg("starting docs service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
