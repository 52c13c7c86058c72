package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// API describes the upstream catalog REST service.
type API struct {
	BaseURL              string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8000/api/v1" validate:"required,url"`
	Timeout              time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s" validate:"gt=0"`
	RetryAttempts        int           `yaml:"retry_attempts" env:"API_RETRY_ATTEMPTS" env-default:"3" validate:"gte=0,lte=10"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"API_RETRY_INITIAL_INTERVAL" env-default:"250ms"`
	RetryMaxInterval     time.Duration `yaml:"retry_max_interval" env:"API_RETRY_MAX_INTERVAL" env-default:"2s"`
	DropZeroParams       bool          `yaml:"drop_zero_params" env:"API_DROP_ZERO_PARAMS" env-default:"false"`
}

type Storage struct {
	Driver       string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file" validate:"oneof=file redis postgres memory"`
	Dir          string `yaml:"dir" env:"STORAGE_DIR" env-default:"./data"`
	Prefix       string `yaml:"prefix" env:"STORAGE_PREFIX" env-default:"storefront"`
	CartKey      string `yaml:"cart_key" env:"STORAGE_CART_KEY" env-default:"ecommerce_cart" validate:"required"`
	WatchlistKey string `yaml:"watchlist_key" env:"STORAGE_WATCHLIST_KEY" env-default:"ecommerce_watchlist" validate:"required,nefield=CartKey"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"5"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"2"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	Driver     string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory" validate:"oneof=memory redis none"`
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	MaxEntries int           `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"1000" validate:"gt=0"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1" validate:"gte=0,lte=1"`
}

// UI holds presentation tunables.
type UI struct {
	CompactBreakpoint int `yaml:"compact_breakpoint" env:"UI_COMPACT_BREAKPOINT" env-default:"1024" validate:"gt=0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	API          API          `yaml:"api"`
	Storage      Storage      `yaml:"storage"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	Otel         Otel         `yaml:"otel"`
	UI           UI           `yaml:"ui"`
}

func MustLoad() *Config {

	if err := LoadDotEnv(); err != nil {
		log.Printf("no .env file loaded: %s", err.Error())
	}

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			configPath = "config/local.yaml"

		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment without overriding variables already set.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	return godotenv.Load(paths...)
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Storage.Driver == "postgres" && (c.Database.User == "" || c.Database.Name == "") {
		return errors.New("invalid config: postgres storage requires PG_USER and PG_DBNAME")
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

func (r *RedisConnect) Addr() string {
	return r.Host + ":" + r.Port
}
