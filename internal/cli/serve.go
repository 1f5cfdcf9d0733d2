package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail-cli/internal/handler"
	"retail-cli/internal/router"
)

// runServe starts the HTTP API server and blocks until a shutdown
// signal or a server error.
func (a *App) runServe(ctx context.Context) error {
	if err := a.cfg.ValidateServe(); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	productHandler := handler.NewProductHandler(a.products, a.logger)
	customerHandler := handler.NewCustomerHandler(a.customers, a.logger)
	orderHandler := handler.NewOrderHandler(a.orders, a.logger)
	paymentHandler := handler.NewPaymentHandler(a.payments, a.logger)
	reportHandler := handler.NewReportHandler(a.reports, a.logger)

	mux := router.New(
		productHandler,
		customerHandler,
		orderHandler,
		paymentHandler,
		reportHandler,
		a.cfg.Auth.APIKey,
		a.logger,
	)

	server := &http.Server{
		Addr:         a.cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info().
			Str("address", a.cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		return a.shutdownServer(server, "context cancelled")

	case sig := <-shutdown:
		return a.shutdownServer(server, sig.String())
	}
}

func (a *App) shutdownServer(server *http.Server, reason string) error {
	a.logger.Info().
		Str("reason", reason).
		Msg("shutdown signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("failed to shutdown server gracefully")
		if closeErr := server.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("failed to close server")
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.logger.Info().Msg("server shutdown completed")
	return nil
}
