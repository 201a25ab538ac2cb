package config

import (
	"fmt"

	"github.com/bnema/currency-gateway/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Economy economySchema `toml:"economy"`
	Server  serverSchema  `toml:"server"`
	Ledger  ledgerSchema  `toml:"ledger"`
	Log     logSchema     `toml:"log"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type economySchema struct {
	Module                  string  `toml:"module"`
	CurrencyServer          string  `toml:"currency_server"`
	UserServerURL           string  `toml:"user_server_url"`
	SellEnabled             bool    `toml:"sell_enabled"`
	PriceEnergyUnit         int32   `toml:"price_energy_unit"`
	PriceObjectClaim        int32   `toml:"price_object_claim"`
	PricePublicObjectDecay  int32   `toml:"price_public_object_decay"`
	PricePublicObjectDelete int32   `toml:"price_public_object_delete"`
	PriceParcelClaim        int32   `toml:"price_parcel_claim"`
	PriceParcelClaimFactor  float32 `toml:"price_parcel_claim_factor"`
	PriceUpload             int32   `toml:"price_upload"`
	PriceRentLight          int32   `toml:"price_rent_light"`
	TeleportMinPrice        int32   `toml:"teleport_min_price"`
	TeleportPriceExponent   float32 `toml:"teleport_price_exponent"`
	EnergyEfficiency        float32 `toml:"energy_efficiency"`
	PriceObjectRent         float32 `toml:"price_object_rent"`
	PriceObjectScaleFactor  float32 `toml:"price_object_scale_factor"`
	PriceParcelRent         int32   `toml:"price_parcel_rent"`
	PriceGroupCreate        int32   `toml:"price_group_create"`
}

type serverSchema struct {
	Listen        string `toml:"listen"`
	RPCPath       string `toml:"rpc_path"`
	MetricsPath   string `toml:"metrics_path"`
	SimulatorPath string `toml:"simulator_path"`
}

type ledgerSchema struct {
	InitialBalance int32  `toml:"initial_balance"`
	RequestTimeout string `toml:"request_timeout"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func toSchema(cfg Config) fileSchema {
	prices := cfg.Economy.Prices

	return fileSchema{
		Version: currentSchemaVersion,
		Economy: economySchema{
			Module:                  cfg.Economy.Module,
			CurrencyServer:          cfg.Economy.CurrencyServer,
			UserServerURL:           cfg.Economy.UserServerURL,
			SellEnabled:             prices.SellEnabled,
			PriceEnergyUnit:         prices.PriceEnergyUnit,
			PriceObjectClaim:        prices.PriceObjectClaim,
			PricePublicObjectDecay:  prices.PricePublicObjectDecay,
			PricePublicObjectDelete: prices.PricePublicObjectDelete,
			PriceParcelClaim:        prices.PriceParcelClaim,
			PriceParcelClaimFactor:  prices.PriceParcelClaimFactor,
			PriceUpload:             prices.PriceUpload,
			PriceRentLight:          prices.PriceRentLight,
			TeleportMinPrice:        prices.TeleportMinPrice,
			TeleportPriceExponent:   prices.TeleportPriceExponent,
			EnergyEfficiency:        prices.EnergyEfficiency,
			PriceObjectRent:         prices.PriceObjectRent,
			PriceObjectScaleFactor:  prices.PriceObjectScaleFactor,
			PriceParcelRent:         prices.PriceParcelRent,
			PriceGroupCreate:        prices.PriceGroupCreate,
		},
		Server: serverSchema{
			Listen:        cfg.Server.Listen,
			RPCPath:       cfg.Server.RPCPath,
			MetricsPath:   cfg.Server.MetricsPath,
			SimulatorPath: cfg.Server.SimulatorPath,
		},
		Ledger: ledgerSchema{
			InitialBalance: cfg.Ledger.InitialBalance,
			RequestTimeout: cfg.Ledger.RequestTimeout.String(),
		},
		Log: logSchema{Level: cfg.Log.Level},
	}
}

// economyDefaults lists every economy key with its default so viper can
// fill gaps in a partial file.
func economyDefaults(prices domain.EconomyData) map[string]any {
	return map[string]any{
		"sell_enabled":               prices.SellEnabled,
		"price_energy_unit":          prices.PriceEnergyUnit,
		"price_object_claim":         prices.PriceObjectClaim,
		"price_public_object_decay":  prices.PricePublicObjectDecay,
		"price_public_object_delete": prices.PricePublicObjectDelete,
		"price_parcel_claim":         prices.PriceParcelClaim,
		"price_parcel_claim_factor":  prices.PriceParcelClaimFactor,
		"price_upload":               prices.PriceUpload,
		"price_rent_light":           prices.PriceRentLight,
		"teleport_min_price":         prices.TeleportMinPrice,
		"teleport_price_exponent":    prices.TeleportPriceExponent,
		"energy_efficiency":          prices.EnergyEfficiency,
		"price_object_rent":          prices.PriceObjectRent,
		"price_object_scale_factor":  prices.PriceObjectScaleFactor,
		"price_parcel_rent":          prices.PriceParcelRent,
		"price_group_create":         prices.PriceGroupCreate,
	}
}
