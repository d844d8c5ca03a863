package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the typed view of the environment used by cmd/server and
// cmd/cardcheck.
type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	Env         string   `env:"ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	JWT   JWTConfig   `envPrefix:"JWT_"`
	Cards CardsConfig
}

type DBConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD" envDefault:"postgres"`
	Name            string        `env:"NAME" envDefault:"cardcheck"`
	Schema          string        `env:"SCHEMA" envDefault:"public"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"30m"`
}

// DSN returns the key=value connection string understood by the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s search_path=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.Schema)
}

type RedisConfig struct {
	Host     string        `env:"HOST" envDefault:"localhost"`
	Port     string        `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

type JWTConfig struct {
	Secret string        `env:"SECRET,notEmpty"`
	Issuer string        `env:"ISSUER" envDefault:"cardcheck-api"`
	TTL    time.Duration `env:"TTL" envDefault:"15m"`
}

type CardsConfig struct {
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	FingerprintKey  string `env:"FINGERPRINT_KEY,notEmpty"`
	DateFormat      string `env:"CARD_DATE_FORMAT" envDefault:"MMyy"`
	BatchMaxSize    int    `env:"BATCH_MAX_SIZE" envDefault:"100"`
	BatchWorkers    int    `env:"BATCH_WORKERS" envDefault:"8"`
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Cards.BatchMaxSize < 1 {
		return nil, fmt.Errorf("BATCH_MAX_SIZE must be positive, got %d", cfg.Cards.BatchMaxSize)
	}
	if cfg.Cards.BatchWorkers < 1 {
		return nil, fmt.Errorf("BATCH_WORKERS must be positive, got %d", cfg.Cards.BatchWorkers)
	}
	return &cfg, nil
}

// LoadJWT parses only the JWT_ variables, for tools that mint tokens
// without the rest of the server configuration.
func LoadJWT() (*JWTConfig, error) {
	var cfg JWTConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "JWT_"}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}
