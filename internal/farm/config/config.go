// Package config loads the farm service settings from a YAML file with
// FARM_ prefixed environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gartstein/farm/internal/farm/db"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment override, e.g. FARM_DB_HOST.
const EnvPrefix = "FARM"

// DefaultPath is where the binaries look for their config file.
const DefaultPath = "internal/farm/config/config.yaml"

type Config struct {
	GRPCPort       int           `mapstructure:"grpc_port"`
	HTTPPort       int           `mapstructure:"http_port"`
	DBHost         string        `mapstructure:"db_host"`
	DBPort         int           `mapstructure:"db_port"`
	DBUser         string        `mapstructure:"db_user"`
	DBPassword     string        `mapstructure:"db_password"`
	DBName         string        `mapstructure:"db_name"`
	DBSSLMode      string        `mapstructure:"db_sslmode"`
	KafkaBrokers   []string      `mapstructure:"kafka_brokers"`
	Topic          string        `mapstructure:"topic"`
	ConsumerGroup  string        `mapstructure:"consumer_group"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	AuthPort       int           `mapstructure:"auth_port"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
	LogLevel       string        `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("http_port", 8080)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "farm")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", []string{"localhost:9092"})
	v.SetDefault("topic", "farm-events")
	v.SetDefault("consumer_group", "farm-alerts")
	v.SetDefault("jwt_secret", "jwt_secret")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("auth_port", 8081)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("log_level", "info")
}

// Load reads the file at path, if any, and applies environment overrides
// on top. An empty path yields defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.GRPCPort <= 0 || c.HTTPPort <= 0 {
		errs = append(errs, errors.New("grpc_port and http_port must be positive"))
	}
	if c.GRPCPort == c.HTTPPort {
		errs = append(errs, errors.New("grpc_port and http_port must differ"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret is required"))
	}
	if len(c.KafkaBrokers) == 0 {
		errs = append(errs, errors.New("kafka_brokers is required"))
	}
	if c.Topic == "" {
		errs = append(errs, errors.New("topic is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Database returns the repository connection settings.
func (c *Config) Database() *db.Config {
	return &db.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
