package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds every externally supplied value the core needs. The base
// URL, token and category name are opaque strings to the rest of the
// system.
type Config struct {
	// API
	BaseURL  string
	APIToken string

	// CategoryName is the current-user identity recorded on created
	// transactions
	CategoryName string

	// HTTP
	Timeout time.Duration

	// Observability
	SentryDSN string
	LogLevel  string
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		BaseURL:      getEnv("SPENDINGS_BASE_URL", "https://firefly.lanhnguyen.dev/api"),
		APIToken:     getEnv("SPENDINGS_API_TOKEN", ""),
		CategoryName: getEnv("SPENDINGS_CATEGORY_NAME", ""),
		Timeout:      getEnvDuration("SPENDINGS_HTTP_TIMEOUT", 30*time.Second),
		SentryDSN:    getEnv("SPENDINGS_SENTRY_DSN", ""),
		LogLevel:     getEnv("SPENDINGS_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.BaseURL == "" {
		problems = append(problems, "base URL must not be empty")
	} else if parsed, err := url.Parse(c.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("base URL %q is not an absolute URL", c.BaseURL))
	}

	if c.APIToken == "" {
		problems = append(problems, "API token must be set (SPENDINGS_API_TOKEN)")
	}

	if c.CategoryName == "" {
		problems = append(problems, "category name must be set (SPENDINGS_CATEGORY_NAME)")
	}

	if c.Timeout <= 0 {
		problems = append(problems, "HTTP timeout must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
