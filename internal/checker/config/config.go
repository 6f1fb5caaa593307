package config

import (
	"stock-target-deviation/internal/entity"
	"stock-target-deviation/pkg/config"

	"github.com/shopspring/decimal"
)

// PriceOverride replaces or adds a reference price in the built-in snapshot.
type PriceOverride struct {
	Symbol string  `mapstructure:"symbol" validate:"required"`
	Price  float64 `mapstructure:"price" validate:"gt=0"`
}

// Checker holds deviation checker configuration.
type Checker struct {
	InputPath        string          `mapstructure:"input_path" default:"earnings_data.json" validate:"required"`
	ThresholdPercent float64         `mapstructure:"threshold_percent" default:"20" validate:"gte=0"`
	Prices           []PriceOverride `mapstructure:"prices" validate:"dive"`
}

// Config holds the full configuration for the deviation checker.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	Checker Checker       `mapstructure:"checker"`
}

var envKeys = []string{
	"app.env",
	"logger.level",
	"logger.encoding",
	"checker.input_path",
	"checker.threshold_percent",
}

// Load loads the checker configuration from the given path.
// A missing file is not an error; defaults and environment variables apply.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, envKeys...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration, e.g. after command line overrides were applied.
func (c *Config) Validate() error {
	return config.Validate(c)
}

// PriceEntries converts the configured price overrides into price entries.
func (c Checker) PriceEntries() []entity.PriceEntry {
	entries := make([]entity.PriceEntry, 0, len(c.Prices))
	for _, p := range c.Prices {
		entries = append(entries, entity.PriceEntry{
			Symbol: p.Symbol,
			Price:  decimal.NewFromFloat(p.Price),
		})
	}
	return entries
}

// Threshold returns the deviation threshold in percent.
func (c Checker) Threshold() decimal.Decimal {
	return decimal.NewFromFloat(c.ThresholdPercent)
}
