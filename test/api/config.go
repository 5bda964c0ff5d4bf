package api

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultUsername       = "admin10"
	defaultPassword       = "securePassword"
	defaultRequestTimeout = 10 * time.Second
)

// TestConfig holds the settings of one suite run.
type TestConfig struct {
	// BaseURL is the catalog under test. Empty selects the stub.
	BaseURL        string
	Username       string
	Password       string
	RequestTimeout time.Duration
}

// UseStub reports whether the suites run against the in-process stub.
func (c *TestConfig) UseStub() bool {
	return c.BaseURL == ""
}

// LoadTestConfig reads the environment, after loading test/.env when it
// exists.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:        os.Getenv("CATALOG_BASE_URL"),
		Username:       getWithDefault("CATALOG_USERNAME", defaultUsername),
		Password:       getWithDefault("CATALOG_PASSWORD", defaultPassword),
		RequestTimeout: getDurationWithDefault("CATALOG_REQUEST_TIMEOUT", defaultRequestTimeout),
	}
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func loadEnvFile() {
	// relative to test/api/suites
	path := filepath.Join("..", "..", ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}

	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", path, err)
	}
}
