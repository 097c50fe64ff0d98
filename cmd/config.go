package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// EnvPrefix starts every configuration variable. A double underscore separates
// sections, so SALES_DATABASE__HOST sets Database.Host.
const EnvPrefix = "SALES_"

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Database DatabaseConfig `koanf:"database"`
	Kafka    KafkaConfig    `koanf:"kafka"`
	Relay    RelayConfig    `koanf:"relay"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DSN renders the connection string understood by the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type KafkaConfig struct {
	Brokers       []string `koanf:"brokers" validate:"required,min=1,dive,required"`
	ShipmentTopic string   `koanf:"shipment_topic" validate:"required"`
}

type RelayConfig struct {
	Schedule  string `koanf:"schedule" validate:"required"`
	BatchSize int    `koanf:"batch_size" validate:"gt=0"`
}

type CatalogConfig struct {
	CacheSize int `koanf:"cache_size" validate:"gt=0"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

func defaults() map[string]any {
	return map[string]any{
		"http.port":                  "8080",
		"http.shutdown_timeout":      "10s",
		"database.port":              5432,
		"database.ssl_mode":          "disable",
		"database.max_open_conns":    10,
		"database.max_idle_conns":    5,
		"database.conn_max_lifetime": "30m",
		"kafka.shipment_topic":       "sales.order-shipped",
		"relay.schedule":             "*/5 * * * * *",
		"relay.batch_size":           100,
		"catalog.cache_size":         1024,
		"logger.level":               "info",
	}
}

// LoadConfig reads the configuration from the environment, after loading envFiles
// into it. Missing env files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var config Config
	if err = k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
