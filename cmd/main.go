package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbeckers/hubspot-bridge/container"
	"github.com/mbeckers/hubspot-bridge/internal/config"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// Add graceful shutdown support by listening for interruptions
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c := container.New(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	// Serve app
	srvErr := make(chan error, 1)
	go func() {
		c.Logger.Info().Str("addr", addr).Msg("listening and serving")
		srvErr <- c.App.Listen(addr)
	}()

	// Wait for interruption.
	select {
	case err := <-srvErr:
		// Error when starting HTTP server.
		return err
	case <-ctx.Done():
		// Cleanup after shutdown signalled
		c.Logger.Info().Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.App.ShutdownWithContext(ctx); err != nil {
			return err
		}

		c.Logger.Info().Msg("shutdown completed")
	}

	return nil
}
