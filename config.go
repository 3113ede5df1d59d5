package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"omni-client/internal/constants"
)

// Config is the runtime configuration, read from the environment.
// Every setting is optional; defaults target a vLLM server on localhost.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	Model         string
	APIKey        string
	StripThinking bool
	LogLevel      string
	LogFile       string
}

// loadConfig reads the configuration from environment variables
func loadConfig() (Config, error) {
	cfg := Config{
		BaseURL:       constants.DefaultBaseURL,
		Timeout:       constants.DefaultTimeout,
		Model:         os.Getenv("OMNI_MODEL"),
		APIKey:        os.Getenv("OMNI_API_KEY"),
		StripThinking: true,
		LogLevel:      strings.ToLower(os.Getenv("LOG_LEVEL")),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	if baseURL := os.Getenv("OMNI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	if timeout := os.Getenv("OMNI_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OMNI_TIMEOUT %q: %w", timeout, err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("OMNI_TIMEOUT must be positive, got %s", parsed)
		}
		cfg.Timeout = parsed
	}

	if strip := os.Getenv("STRIP_THINKING"); strip != "" {
		parsed, err := strconv.ParseBool(strip)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STRIP_THINKING %q: %w", strip, err)
		}
		cfg.StripThinking = parsed
	}

	return cfg, nil
}
