package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/literalura/internal/config"
	"github.com/mrlokans/literalura/internal/database"
	"github.com/mrlokans/literalura/internal/database/books"
	http_controllers "github.com/mrlokans/literalura/internal/http"
)

// Serve runs srv until ctx is done, then shuts it down gracefully within timeout.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server exiting")
	return nil
}

// Run opens the catalog and serves the read-only reporting API until
// SIGINT or SIGTERM.
func Run(cfg *config.Config, version string) error {
	db, err := database.NewDatabase(cfg.Database.Path, database.WithSQLLogging(cfg.Database.LogSQL))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Reader:   books.NewRepository(db.DB),
		Database: db,
		Version:  version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, srv, time.Duration(cfg.Global.ShutdownTimeoutInSeconds)*time.Second)
}
