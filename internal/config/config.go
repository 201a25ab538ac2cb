package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
	"pkt.systems/pslog"
)

const (
	// ModuleName is the economy module this gateway implements.
	ModuleName = "DTLMoneyModule"

	configDir  = ".currency-gateway"
	configFile = "gateway.toml"
	configType = "toml"

	DefaultListen         = "127.0.0.1:9010"
	DefaultRPCPath        = "/"
	DefaultMetricsPath    = "/metrics"
	DefaultSimulatorPath  = "/simulator"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Path    string
	Economy EconomyConfig
	Server  ServerConfig
	Ledger  LedgerConfig
	Log     LogConfig
}

type EconomyConfig struct {
	Module string
	// CurrencyServer is the money server XML-RPC URL. Empty selects the
	// in-memory ledger.
	CurrencyServer string
	UserServerURL  string
	Prices         domain.EconomyData
}

type ServerConfig struct {
	Listen      string
	RPCPath     string
	MetricsPath string
	// SimulatorPath serves the world-engine bridge. Empty disables it.
	SimulatorPath string
}

type LedgerConfig struct {
	InitialBalance int32
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// Overrides are the environment variables that win over the file.
type Overrides struct {
	ConfigPath     string `env:"GW_CONFIG"`
	CurrencyServer string `env:"GW_CURRENCY_SERVER"`
	Listen         string `env:"GW_LISTEN"`
	LogLevel       string `env:"GW_LOG_LEVEL"`
}

type Options struct {
	// Path is the --config flag value; it wins over GW_CONFIG.
	Path string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

func Default() Config {
	return Config{
		Economy: EconomyConfig{
			Module: ModuleName,
			Prices: domain.DefaultEconomyData(),
		},
		Server: ServerConfig{
			Listen:        DefaultListen,
			RPCPath:       DefaultRPCPath,
			MetricsPath:   DefaultMetricsPath,
			SimulatorPath: DefaultSimulatorPath,
		},
		Ledger: LedgerConfig{
			InitialBalance: 2000,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func ParseOverrides(environ map[string]string) (Overrides, error) {
	var overrides Overrides
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}

	return overrides, nil
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// ResolvePath picks the flag, then GW_CONFIG, then the home directory file.
func ResolvePath(flagPath string, overrides Overrides) (string, error) {
	path := strings.TrimSpace(flagPath)
	if path == "" {
		path = strings.TrimSpace(overrides.ConfigPath)
	}
	if path == "" {
		return DefaultPath()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// Load reads the TOML file if present, fills defaults and applies
// environment overrides. A missing file is not an error.
func Load(opts Options) (Config, error) {
	overrides, err := ParseOverrides(opts.Environ)
	if err != nil {
		return Config{}, err
	}

	path, err := ResolvePath(opts.Path, overrides)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	file := fileSchema{Version: v.GetInt("version")}
	if err := file.validateVersion(); err != nil {
		return Config{}, err
	}

	timeout, err := parseTimeout(v.GetString("ledger.request_timeout"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Path: path,
		Economy: EconomyConfig{
			Module:         v.GetString("economy.module"),
			CurrencyServer: v.GetString("economy.currency_server"),
			UserServerURL:  v.GetString("economy.user_server_url"),
			Prices:         pricesFrom(v),
		},
		Server: ServerConfig{
			Listen:        v.GetString("server.listen"),
			RPCPath:       v.GetString("server.rpc_path"),
			MetricsPath:   v.GetString("server.metrics_path"),
			SimulatorPath: v.GetString("server.simulator_path"),
		},
		Ledger: LedgerConfig{
			InitialBalance: v.GetInt32("ledger.initial_balance"),
			RequestTimeout: timeout,
		},
		Log: LogConfig{Level: v.GetString("log.level")},
	}
	cfg.apply(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Enabled reports whether the configured economy module is this gateway.
func (c Config) Enabled() bool {
	return c.Economy.Module == "" || c.Economy.Module == ModuleName
}

// UsesRemoteLedger reports whether a money server is configured.
func (c Config) UsesRemoteLedger() bool {
	return strings.TrimSpace(c.Economy.CurrencyServer) != ""
}

func (c Config) LogLevel() pslog.Level {
	level, ok := pslog.ParseLevel(c.Log.Level)
	if !ok {
		level, _ = pslog.ParseLevel(DefaultLogLevel)
	}
	return level
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return fmt.Errorf("server.listen is empty: %w", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Server.RPCPath, "/") {
		return fmt.Errorf("server.rpc_path %q must start with /: %w", c.Server.RPCPath, ErrInvalidConfig)
	}
	if err := validatePath("server.metrics_path", c.Server.MetricsPath, c.Server.RPCPath); err != nil {
		return err
	}
	if err := validatePath("server.simulator_path", c.Server.SimulatorPath, c.Server.RPCPath, c.Server.MetricsPath); err != nil {
		return err
	}
	if c.UsesRemoteLedger() {
		if err := validateURL("economy.currency_server", c.Economy.CurrencyServer); err != nil {
			return err
		}
	}
	if c.Economy.UserServerURL != "" {
		if err := validateURL("economy.user_server_url", c.Economy.UserServerURL); err != nil {
			return err
		}
	}
	if c.Ledger.InitialBalance < 0 {
		return fmt.Errorf("ledger.initial_balance %d is negative: %w", c.Ledger.InitialBalance, ErrInvalidConfig)
	}
	if c.Ledger.RequestTimeout <= 0 {
		return fmt.Errorf("ledger.request_timeout must be positive: %w", ErrInvalidConfig)
	}
	if _, ok := pslog.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return nil
}

// validatePath accepts an empty path. Otherwise it must be absolute and
// differ from every path in taken.
func validatePath(key, path string, taken ...string) error {
	if path == "" {
		return nil
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s %q must start with /: %w", key, path, ErrInvalidConfig)
	}
	for _, other := range taken {
		if path == other {
			return fmt.Errorf("%s %q is already served: %w", key, path, ErrInvalidConfig)
		}
	}

	return nil
}

func (c *Config) apply(overrides Overrides) {
	if overrides.CurrencyServer != "" {
		c.Economy.CurrencyServer = overrides.CurrencyServer
	}
	if overrides.Listen != "" {
		c.Server.Listen = overrides.Listen
	}
	if overrides.LogLevel != "" {
		c.Log.Level = overrides.LogLevel
	}
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("version", currentSchemaVersion)
	v.SetDefault("economy.module", cfg.Economy.Module)
	v.SetDefault("economy.currency_server", cfg.Economy.CurrencyServer)
	v.SetDefault("economy.user_server_url", cfg.Economy.UserServerURL)
	for key, value := range economyDefaults(cfg.Economy.Prices) {
		v.SetDefault("economy."+key, value)
	}
	v.SetDefault("server.listen", cfg.Server.Listen)
	v.SetDefault("server.rpc_path", cfg.Server.RPCPath)
	v.SetDefault("server.metrics_path", cfg.Server.MetricsPath)
	v.SetDefault("server.simulator_path", cfg.Server.SimulatorPath)
	v.SetDefault("ledger.initial_balance", cfg.Ledger.InitialBalance)
	v.SetDefault("ledger.request_timeout", cfg.Ledger.RequestTimeout.String())
	v.SetDefault("log.level", cfg.Log.Level)
}

func pricesFrom(v *viper.Viper) domain.EconomyData {
	float := func(key string) float32 { return float32(v.GetFloat64("economy." + key)) }
	integer := func(key string) int32 { return v.GetInt32("economy." + key) }

	return domain.EconomyData{
		PriceEnergyUnit:         integer("price_energy_unit"),
		PriceGroupCreate:        integer("price_group_create"),
		PriceObjectClaim:        integer("price_object_claim"),
		PriceObjectRent:         float("price_object_rent"),
		PriceObjectScaleFactor:  float("price_object_scale_factor"),
		PriceParcelClaim:        integer("price_parcel_claim"),
		PriceParcelClaimFactor:  float("price_parcel_claim_factor"),
		PriceParcelRent:         integer("price_parcel_rent"),
		PricePublicObjectDecay:  integer("price_public_object_decay"),
		PricePublicObjectDelete: integer("price_public_object_delete"),
		PriceRentLight:          integer("price_rent_light"),
		PriceUpload:             integer("price_upload"),
		TeleportMinPrice:        integer("teleport_min_price"),
		TeleportPriceExponent:   float("teleport_price_exponent"),
		EnergyEfficiency:        float("energy_efficiency"),
		SellEnabled:             v.GetBool("economy.sell_enabled"),
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	timeout, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("ledger.request_timeout %q: %w", raw, ErrInvalidConfig)
	}

	return timeout, nil
}

func validateURL(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s %q is not an absolute URL: %w", key, raw, ErrInvalidConfig)
	}

	return nil
}
