package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	statusadapter "github.com/bnema/currency-gateway/internal/adapters/render/status"
	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/config"
	"pkt.systems/pslog"
)

type app struct {
	configPath      string
	balanceRenderer func(application.BalanceReport, statusadapter.RenderOptions) (string, error)
	endpoint        string
	now             func() time.Time
}

func wireApp() *app {
	return &app{
		balanceRenderer: statusadapter.Render,
		endpoint:        envOrDefault("GW_ENDPOINT", ""),
		now:             time.Now,
	}
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(config.Options{Path: a.configPath})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// configFilePath resolves where config init writes without reading the file.
func (a *app) configFilePath() (string, error) {
	overrides, err := config.ParseOverrides(nil)
	if err != nil {
		return "", err
	}

	return config.ResolvePath(a.configPath, overrides)
}

func newLogger(w io.Writer, level pslog.Level) pslog.Logger {
	return pslog.NewStructured(w).LogLevel(level).With("app", "gw")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
