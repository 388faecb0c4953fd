package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all settlement service configuration.
type Config struct {
	App        AppConfig
	Log        LogConfig
	AWS        AWSConfig
	Tables     TableConfig
	Services   ServicesConfig
	Settlement SettlementConfig
	NATS       NATSConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AWSConfig is used for the DynamoDB client. Endpoint is set for dynamodb-local.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TableConfig struct {
	FundingRequests     string
	FundingRequestViews string
	Orders              string
	OrderViews          string
}

// ServicesConfig points at the user (wallet) and product services.
type ServicesConfig struct {
	UserServiceURL    string
	ProductServiceURL string
	HTTPTimeout       time.Duration
}

type SettlementConfig struct {
	// EscrowAccountID is the platform account that holds order funds until delivery.
	EscrowAccountID   string
	MinRequiredAmount decimal.Decimal
}

type NATSConfig struct {
	Enabled    bool
	URL        string
	Stream     string
	Subject    string
	BufferSize int
}

// Load reads configuration.
// Priority (highest to lowest):
// 1. Environment variables with SETTLEMENT_ prefix (e.g., SETTLEMENT_NATS_URL)
// 2. config.yaml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SETTLEMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	minAmount, err := decimal.NewFromString(v.GetString("funding.min_required_amount"))
	if err != nil {
		return nil, fmt.Errorf("funding.min_required_amount: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("aws.region"),
			Endpoint:        v.GetString("aws.endpoint"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
		},
		Tables: TableConfig{
			FundingRequests:     v.GetString("tables.funding_requests"),
			FundingRequestViews: v.GetString("tables.funding_request_views"),
			Orders:              v.GetString("tables.orders"),
			OrderViews:          v.GetString("tables.order_views"),
		},
		Services: ServicesConfig{
			UserServiceURL:    strings.TrimRight(v.GetString("services.user_service_url"), "/"),
			ProductServiceURL: strings.TrimRight(v.GetString("services.product_service_url"), "/"),
			HTTPTimeout:       v.GetDuration("services.http_timeout"),
		},
		Settlement: SettlementConfig{
			EscrowAccountID:   v.GetString("escrow.account_id"),
			MinRequiredAmount: minAmount,
		},
		NATS: NATSConfig{
			Enabled:    v.GetBool("nats.enabled"),
			URL:        v.GetString("nats.url"),
			Stream:     v.GetString("nats.stream"),
			Subject:    v.GetString("nats.subject"),
			BufferSize: v.GetInt("nats.buffer_size"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "settlement-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.funding_requests", "funding_requests")
	v.SetDefault("tables.funding_request_views", "funding_request_views")
	v.SetDefault("tables.orders", "orders")
	v.SetDefault("tables.order_views", "order_views")

	v.SetDefault("services.user_service_url", "http://localhost:8081")
	v.SetDefault("services.product_service_url", "http://localhost:8082")
	v.SetDefault("services.http_timeout", 5*time.Second)

	v.SetDefault("funding.min_required_amount", "100.00")

	v.SetDefault("nats.enabled", true)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream", "ORDER_NOTIFICATIONS")
	v.SetDefault("nats.subject", "orderNotification")
	v.SetDefault("nats.buffer_size", 256)
}

func (c *Config) validate() error {
	if c.Settlement.EscrowAccountID == "" {
		return errors.New("escrow.account_id is required")
	}
	if !c.Settlement.MinRequiredAmount.IsPositive() {
		return errors.New("funding.min_required_amount must be positive")
	}
	if c.Services.HTTPTimeout <= 0 {
		return errors.New("services.http_timeout must be positive")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		return errors.New("nats.url is required when nats is enabled")
	}
	return nil
}

// IsProduction returns true if running in production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
