package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/currency-gateway/internal/gateway"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway's money server endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, app, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides server.listen and GW_LISTEN)")

	return cmd
}

func runServe(cmd *cobra.Command, app *app, listen string) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel())
	logger.Info("gw.config.loaded", "path", cfg.Path, "listen", cfg.Server.Listen)

	gw, err := gateway.New(cfg, gateway.WithLogger(logger))
	if errors.Is(err, gateway.ErrDisabled) {
		logger.Warn("gw.disabled", "module", cfg.Economy.Module)
		return nil
	}
	if err != nil {
		return err
	}

	if err := gw.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
