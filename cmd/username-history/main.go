package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bharatsindhu/username-history/internal/app"
	"github.com/bharatsindhu/username-history/internal/config"
	"github.com/bharatsindhu/username-history/internal/console"
	"github.com/bharatsindhu/username-history/internal/logging"
	"github.com/bharatsindhu/username-history/internal/roblox"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "username-history",
		Short: "Save a user's previous usernames to a text file",
		Long: `username-history asks for a numeric user ID, fetches the first page of that
user's username history from the users API and writes one name per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, stdin, stdout, stderr)
		},
	}

	cmd.Flags().String("output", "", "File to write usernames to (default usernames.txt)")
	cmd.Flags().String("api-base", "", "Base URL of the users API")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().String("log-format", "", "Log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	a := &app.App{
		Console:    console.NewPrompter(stdin, stdout),
		Fetcher:    &roblox.Client{BaseURL: cfg.APIBase, Logger: logger},
		OutputPath: cfg.OutputPath,
		Out:        stdout,
		Logger:     logger,
	}

	outcome, err := a.Run(cmd.Context())
	if err != nil {
		logger.Debug("lookup aborted", "state", a.State().String())
		return err
	}
	logger.Debug("lookup finished", "outcome", outcome.String())
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputPath, _ = flags.GetString("output")
	}
	if flags.Changed("api-base") {
		cfg.APIBase, _ = flags.GetString("api-base")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
}
