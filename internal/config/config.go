package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	LogLevel      string `env:"LOG_LEVEL"`

	JWTSecret         string  `env:"JWT_SECRET"`
	GatewayToken      string  `env:"GATEWAY_TOKEN"`
	AdminIDs          []int64 `env:"ADMIN_IDS"`
	AdminPasswordHash string  `env:"ADMIN_PASSWORD_HASH"`

	DefaultCommissionPercent decimal.Decimal `env:"DEFAULT_COMMISSION_PERCENT" envDefault:"10"`
	VIPPrice                 decimal.Decimal `env:"VIP_PRICE"                  envDefault:"5"`
	VIPDuration              time.Duration   `env:"VIP_DURATION"               envDefault:"720h"`
	DailyOrderLimit          int64           `env:"DAILY_ORDER_LIMIT"          envDefault:"10"`
	DailyOfferLimit          int64           `env:"DAILY_OFFER_LIMIT"          envDefault:"30"`

	PaymentAPIURL       string        `env:"PAYMENT_API_URL"       envDefault:"https://api.nowpayments.io"`
	PaymentAPIKey       string        `env:"PAYMENT_API_KEY"`
	ChainAPIURL         string        `env:"CHAIN_API_URL"         envDefault:"https://api.trongrid.io"`
	DepositPollInterval time.Duration `env:"DEPOSIT_POLL_INTERVAL" envDefault:"2m"`
	DepositPollWorkers  uint          `env:"DEPOSIT_POLL_WORKERS"  envDefault:"5"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB"`
	InteractionTTL time.Duration `env:"INTERACTION_TTL" envDefault:"30m"`

	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	NotifyTopic  string   `env:"NOTIFY_TOPIC"  envDefault:"gigmarket.notifications"`
}

func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// load собирает конфигурацию из окружения и флагов args. Значения окружения приоритетнее флагов,
// флаги задают значения по умолчанию.
func load(args []string) (*Config, error) {
	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	var flagsConfig Config
	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, fmt.Errorf("parse flags: %s", err.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("gigmarket", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	fs.StringVar(&flagConfig.LogLevel, "l", "info", "Log level")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig дополняет конфигурацию из окружения значениями флагов для незаданных полей.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	conf.LogLevel = defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel)
	return &conf
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is not set"))
	}
	if c.GatewayToken == "" {
		errs = append(errs, errors.New("gateway token is not set"))
	}
	if c.DefaultCommissionPercent.IsNegative() || c.DefaultCommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, fmt.Errorf("default commission %s is out of range 0..100", c.DefaultCommissionPercent))
	}
	if c.VIPPrice.IsNegative() {
		errs = append(errs, errors.New("vip price must not be negative"))
	}
	if c.DepositPollWorkers == 0 {
		errs = append(errs, errors.New("deposit poll workers must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
