package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// The URL under which the API is reachable, used for the Location
	// header and the published API documentation
	APIURL string

	// Logging
	LogFormat string
	GinMode   string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "data/finance-tracker.db"),
		APIURL:    getEnv("API_URL", "http://localhost:8080"),
		LogFormat: getEnv("LOG_FORMAT", ""),
		GinMode:   getEnv("GIN_MODE", "release"),
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API URL %q: %s", c.APIURL, err))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid log format %q: must be 'human' or 'json'", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return nil
}

// BaseURL returns the parsed APIURL. Call Validate first.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
