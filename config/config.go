package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents an app config.
type Config struct {
	HTTP    HTTP
	MongoDB MongoDB
	Logger  Logger
	Resolve Resolve
}

// HTTP represents a REST API server configuration.
type HTTP struct {
	Port           string        `env:"PORT" env-default:"3000"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"15s"`
}

// Address returns an address the server listens on.
func (h HTTP) Address() string {
	return ":" + h.Port
}

// MongoDB represents a mongoDB database configuration.
type MongoDB struct {
	URI            string        `env:"MONGODB_URI" env-required:"true"`
	Database       string        `env:"MONGODB_DATABASE" env-default:"finance_tracker"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"FT_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"FT_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"FT_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

// Resolve represents a configuration of category resolution for transaction listing.
type Resolve struct {
	Workers int `env:"RESOLVE_WORKERS" env-default:"4"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		// .env is optional, variables from the environment take precedence.
		_ = godotenv.Load()

		cfg, err := Read()
		if err != nil {
			log.Fatalf("read env: %v", err)
		}

		config = *cfg
	})

	return &config
}

// Read reads config from the environment without caching it.
func Read() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
