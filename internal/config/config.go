package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	ProfileDevelopment = "development"
	ProfileTest        = "test"
	ProfileProduction  = "production"

	defaultFixtureAddress = "127.0.0.1:9446"
	defaultRemoteAddress  = ":9446"
)

type Config struct {
	// DatabaseURL is the remote store endpoint. Leaving it empty selects fixture mode.
	DatabaseURL     string
	AppEnv          string
	ListenAddress   string
	LogLevel        string
	SessionTTL      time.Duration
	OperatorWorkers int
	KafkaBrokers    []string
	KafkaTopic      string
}

type fileConfig struct {
	DatabaseURL     string   `toml:"database_url"`
	AppEnv          string   `toml:"app_env"`
	ListenAddress   string   `toml:"listen_address"`
	LogLevel        string   `toml:"log_level"`
	SessionTTL      string   `toml:"session_ttl"`
	OperatorWorkers int      `toml:"operator_workers"`
	KafkaBrokers    []string `toml:"kafka_brokers"`
	KafkaTopic      string   `toml:"kafka_topic"`
}

// FixtureMode reports whether the process serves sample data instead of the remote store. Profiles
// other than development (staging, preview and the like) follow DATABASE_URL like production does.
func (c *Config) FixtureMode() bool {
	return c.DatabaseURL == "" || c.AppEnv == ProfileDevelopment
}

// ProcessEnvironmentVariables builds the configuration from defaults, then the optional TOML file
// named by CONFIG_FILE, then a .env file in the working directory, then the process environment.
// Later layers win.
func ProcessEnvironmentVariables() (*Config, error) {
	env := Config{
		AppEnv:          ProfileProduction,
		LogLevel:        "info",
		SessionTTL:      24 * time.Hour,
		OperatorWorkers: 4,
		KafkaTopic:      "hustler-ledger.events",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := env.loadFile(path); err != nil {
			return nil, err
		}
	}

	// .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.loadEnvironment(); err != nil {
		return nil, err
	}

	if env.ListenAddress == "" {
		if env.FixtureMode() {
			env.ListenAddress = defaultFixtureAddress
		} else {
			env.ListenAddress = defaultRemoteAddress
		}
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) loadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}

	if meta.IsDefined("database_url") {
		c.DatabaseURL = strings.TrimSpace(raw.DatabaseURL)
	}
	if meta.IsDefined("app_env") {
		c.AppEnv = strings.ToLower(strings.TrimSpace(raw.AppEnv))
	}
	if meta.IsDefined("listen_address") {
		c.ListenAddress = strings.TrimSpace(raw.ListenAddress)
	}
	if meta.IsDefined("log_level") {
		c.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("session_ttl") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SessionTTL))
		if err != nil {
			return fmt.Errorf("parse session_ttl: %w", err)
		}
		c.SessionTTL = d
	}
	if meta.IsDefined("operator_workers") {
		c.OperatorWorkers = raw.OperatorWorkers
	}
	if meta.IsDefined("kafka_brokers") {
		c.KafkaBrokers = normalizeList(raw.KafkaBrokers)
	}
	if meta.IsDefined("kafka_topic") {
		c.KafkaTopic = strings.TrimSpace(raw.KafkaTopic)
	}
	return nil
}

func (c *Config) loadEnvironment() error {
	envDatabaseURL := os.Getenv("DATABASE_URL")
	envAppEnv := os.Getenv("APP_ENV")
	envListenAddress := os.Getenv("LISTEN_ADDRESS")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envSessionTTL := os.Getenv("SESSION_TTL")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envKafkaBrokers := os.Getenv("KAFKA_BROKERS")
	envKafkaTopic := os.Getenv("KAFKA_TOPIC")

	if len(envDatabaseURL) != 0 {
		c.DatabaseURL = envDatabaseURL
	}

	if len(envAppEnv) != 0 {
		c.AppEnv = strings.ToLower(strings.TrimSpace(envAppEnv))
	}

	if len(envListenAddress) != 0 {
		c.ListenAddress = envListenAddress
	}

	if len(envLogLevel) != 0 {
		c.LogLevel = envLogLevel
	}

	if len(envSessionTTL) != 0 {
		d, err := time.ParseDuration(envSessionTTL)
		if err != nil {
			return fmt.Errorf("parse SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}

	if len(envOperatorWorkers) != 0 {
		n, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return fmt.Errorf("parse OPERATOR_WORKERS: %w", err)
		}
		c.OperatorWorkers = n
	}

	if len(envKafkaBrokers) != 0 {
		c.KafkaBrokers = normalizeList(strings.Split(envKafkaBrokers, ","))
	}

	if len(envKafkaTopic) != 0 {
		c.KafkaTopic = envKafkaTopic
	}

	return nil
}

// Validate rejects settings the server cannot run with. Fixture mode accepts any credentials, so it
// may only listen on a loopback address.
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.OperatorWorkers < 1 {
		return errors.New("OPERATOR_WORKERS must be at least 1")
	}

	if c.FixtureMode() && !IsLoopback(c.ListenAddress) {
		return fmt.Errorf("fixture mode refuses to listen on non-loopback address %q", c.ListenAddress)
	}
	return nil
}

// IsLoopback reports whether addr (host:port) binds only to the loopback interface.
func IsLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
