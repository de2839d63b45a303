package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bharatsindhu/username-history/internal/config"
	"github.com/bharatsindhu/username-history/internal/logging"
	"github.com/bharatsindhu/username-history/internal/stub"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "history-stub",
		Short:         "Serve username history from a local fixture",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}
	cmd.Flags().String("listen", "", "Listen address (default :8081)")
	cmd.Flags().String("data", "", "Path to the JSON fixture")
	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if cmd.Flags().Changed("listen") {
		cfg.Stub.ListenAddr, _ = cmd.Flags().GetString("listen")
	}
	if cmd.Flags().Changed("data") {
		cfg.Stub.DataPath, _ = cmd.Flags().GetString("data")
	}
	if err := cfg.ValidateStub(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Request logs are always emitted at info.
	logger, err := logging.New(os.Stdout, "info", cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	data, err := os.ReadFile(cfg.Stub.DataPath)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", cfg.Stub.DataPath, err)
	}
	provider, err := stub.NewStaticProvider(data)
	if err != nil {
		return err
	}

	logger.Info("starting history stub", "listen", cfg.Stub.ListenAddr, "data", cfg.Stub.DataPath)

	server := &http.Server{
		Addr:         cfg.Stub.ListenAddr,
		Handler:      stub.NewRouter(provider, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx := cmd.Context()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

