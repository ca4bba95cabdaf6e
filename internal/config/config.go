// Package config loads application configuration and the deal settings that
// drive every valuation.
package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Cash-to-seller policy options.
const (
	CashToSellerStandard     = "Standard"
	CashToSellerAggressive   = "Aggressive"
	CashToSellerConservative = "Conservative"
)

// Config holds the full application configuration.
type Config struct {
	Deal   DealConfig   `yaml:"deal" mapstructure:"deal"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// NegativeTier maps a band of negative seller proceeds to a fixed payout.
// Tiers are evaluated in declared order, so configuration must run from the
// least-negative band to the most-negative one.
type NegativeTier struct {
	Min   float64 `yaml:"min" mapstructure:"min"`
	Value float64 `yaml:"value" mapstructure:"value"`
}

// DealConfig holds every knob of the acquisition-economics calculation. It is
// loaded once, validated once, and shared read-only across all workers.
type DealConfig struct {
	TraditionalAgentFeePct     float64 `yaml:"traditional_agent_fee_pct" mapstructure:"traditional_agent_fee_pct"`
	TraditionalClosingCostsPct float64 `yaml:"traditional_closing_costs_pct" mapstructure:"traditional_closing_costs_pct"`
	NewAgentFeePct             float64 `yaml:"new_agent_fee_pct" mapstructure:"new_agent_fee_pct"`
	CashOfferHighPct           float64 `yaml:"cash_offer_high_pct" mapstructure:"cash_offer_high_pct"`
	CashOfferLowPct            float64 `yaml:"cash_offer_low_pct" mapstructure:"cash_offer_low_pct"`

	MaxStandardCashToSeller float64        `yaml:"max_standard_cash_to_seller" mapstructure:"max_standard_cash_to_seller"`
	CashToSellerFactor      float64        `yaml:"cash_to_seller_factor" mapstructure:"cash_to_seller_factor"`
	CashToSellerOption      string         `yaml:"cash_to_seller_option" mapstructure:"cash_to_seller_option"`
	NegativeTiers           []NegativeTier `yaml:"negative_tiers" mapstructure:"negative_tiers"`
	RoundValues             bool           `yaml:"round_values" mapstructure:"round_values"`
	RoundingFactor          float64        `yaml:"rounding_factor" mapstructure:"rounding_factor"`

	AverageAssignmentFee float64 `yaml:"average_assignment_fee" mapstructure:"average_assignment_fee"`

	// Annotation thresholds. Zero disables the corresponding note.
	MaxInterestRatePct float64 `yaml:"max_interest_rate_pct" mapstructure:"max_interest_rate_pct"`
	MaxEquityPct       float64 `yaml:"max_equity_pct" mapstructure:"max_equity_pct"`

	// Accepted but currently inert: filtering hooks for a surrounding rules
	// engine that has not landed. Kept so operator configs round-trip.
	MaxEntryFeePct            float64  `yaml:"max_entry_fee_pct" mapstructure:"max_entry_fee_pct"`
	MaxEntryFeeAmount         float64  `yaml:"max_entry_fee_amount" mapstructure:"max_entry_fee_amount"`
	MedianHomeSoldPrice       float64  `yaml:"median_home_sold_price" mapstructure:"median_home_sold_price"`
	MedianHomeSoldPriceFactor float64  `yaml:"median_home_sold_price_factor" mapstructure:"median_home_sold_price_factor"`
	MinimumListingPrice       float64  `yaml:"minimum_listing_price" mapstructure:"minimum_listing_price"`
	MaximumListingPrice       float64  `yaml:"maximum_listing_price" mapstructure:"maximum_listing_price"`
	EstimatedRentRatePct      float64  `yaml:"estimated_rent_rate_pct" mapstructure:"estimated_rent_rate_pct"`
	OverMarketValuePct        float64  `yaml:"over_market_value_pct" mapstructure:"over_market_value_pct"`
	PricePerSquareFeet        float64  `yaml:"price_per_square_feet" mapstructure:"price_per_square_feet"`
	DaysOnMarket              int      `yaml:"days_on_market" mapstructure:"days_on_market"`
	ExpandResults             bool     `yaml:"expand_results" mapstructure:"expand_results"`
	FilteredContent           []string `yaml:"filtered_content" mapstructure:"filtered_content"`
}

// StoreConfig configures the run-persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// FetchConfig configures remote lead-feed downloads.
type FetchConfig struct {
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries     int     `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSecond  float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	UserAgent      string  `yaml:"user_agent" mapstructure:"user_agent"`
	FTPTimeoutSecs int     `yaml:"ftp_timeout_secs" mapstructure:"ftp_timeout_secs"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentListings int `yaml:"max_concurrent_listings" mapstructure:"max_concurrent_listings"`
}

// ServerConfig configures the analyze API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultNegativeTiers is the shipped tier ladder: the less under water the
// seller is, the more walking money the offer carries.
func DefaultNegativeTiers() []NegativeTier {
	return []NegativeTier{
		{Min: -5000, Value: 1500},
		{Min: -10000, Value: 1000},
		{Min: math.Inf(-1), Value: 500},
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DEALFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "dealflow.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.max_concurrent_listings", 8)
	v.SetDefault("fetch.timeout_secs", 60)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.rate_per_second", 2.0)
	v.SetDefault("fetch.user_agent", "dealflow-cli")
	v.SetDefault("fetch.ftp_timeout_secs", 30)
	v.SetDefault("deal.traditional_agent_fee_pct", 0.06)
	v.SetDefault("deal.traditional_closing_costs_pct", 0.02)
	v.SetDefault("deal.new_agent_fee_pct", 0.03)
	v.SetDefault("deal.cash_offer_high_pct", 0.70)
	v.SetDefault("deal.cash_offer_low_pct", 0.60)
	v.SetDefault("deal.max_standard_cash_to_seller", 20000)
	v.SetDefault("deal.cash_to_seller_factor", 1.5)
	v.SetDefault("deal.cash_to_seller_option", CashToSellerStandard)
	v.SetDefault("deal.round_values", true)
	v.SetDefault("deal.rounding_factor", 500)
	v.SetDefault("deal.average_assignment_fee", 15000)
	v.SetDefault("deal.max_interest_rate_pct", 0.07)
	v.SetDefault("deal.max_equity_pct", 0.15)
	v.SetDefault("deal.max_entry_fee_pct", 0.15)
	v.SetDefault("deal.max_entry_fee_amount", 20000)
	v.SetDefault("deal.median_home_sold_price", 500000)
	v.SetDefault("deal.median_home_sold_price_factor", 1.5)
	v.SetDefault("deal.minimum_listing_price", 10000)
	v.SetDefault("deal.maximum_listing_price", 1500000)
	v.SetDefault("deal.estimated_rent_rate_pct", 0.01)
	v.SetDefault("deal.over_market_value_pct", 0.03)
	v.SetDefault("deal.days_on_market", 90)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	// Tier ladders do not fit viper defaults; apply in code when absent.
	if len(cfg.Deal.NegativeTiers) == 0 {
		cfg.Deal.NegativeTiers = DefaultNegativeTiers()
	}

	return &cfg, nil
}

// Validate checks the deal settings once, before any listing is processed.
// Invalid shared configuration aborts the whole batch.
func (d *DealConfig) Validate() error {
	switch d.CashToSellerOption {
	case CashToSellerStandard, CashToSellerAggressive, CashToSellerConservative:
	default:
		return eris.Errorf("config: invalid cash_to_seller_option %q", d.CashToSellerOption)
	}

	if len(d.NegativeTiers) == 0 {
		return eris.New("config: at least one negative tier is required")
	}
	for i := 1; i < len(d.NegativeTiers); i++ {
		if d.NegativeTiers[i].Min > d.NegativeTiers[i-1].Min {
			return eris.Errorf("config: negative tiers must run from least-negative to most-negative (tier %d min %.0f > tier %d min %.0f)",
				i, d.NegativeTiers[i].Min, i-1, d.NegativeTiers[i-1].Min)
		}
	}

	if d.RoundingFactor <= 0 {
		return eris.Errorf("config: rounding_factor must be positive (got %g)", d.RoundingFactor)
	}
	if d.CashToSellerFactor <= 0 {
		return eris.Errorf("config: cash_to_seller_factor must be positive (got %g)", d.CashToSellerFactor)
	}

	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
