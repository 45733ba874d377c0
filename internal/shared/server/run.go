package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brew-backend/internal/shared/config"
	"brew-backend/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API on cfg.Port until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config) error {
	srv := &http.Server{
		Addr:              Addr(cfg.Port),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	telemetry.Info("server.start", map[string]any{
		"addr":           srv.Addr,
		"env":            cfg.Env,
		"llm_configured": cfg.HasAPIKey(),
	})
	return Serve(ctx, srv)
}

// Serve runs srv until it fails or ctx is done.
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		telemetry.Info("server.shutdown", map[string]any{"reason": context.Cause(ctx).Error()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
