// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, logging, and analysis capabilities

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig

	// Analysis contains external capability configuration for the analyzers
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string

	// File is an optional log file path; empty means stdout only
	File string
}

// AnalysisConfig holds external capability configuration for the analyzers.
// Absence of a credential disables the corresponding analyzer, it is not an
// error.
type AnalysisConfig struct {
	// Classifier configures the text-classification capability used by the
	// query framing analyzer
	Classifier ClassifierConfig

	// Search configures the search capability used by the authority analyzer
	Search SearchConfig

	// CallTimeout is the per-external-call timeout in seconds
	CallTimeout int
}

// ClassifierConfig holds text-classification capability settings
type ClassifierConfig struct {
	// APIKey is the capability credential; empty disables the analyzer
	APIKey string

	// Endpoint is the chat-completions endpoint URL
	Endpoint string

	// Model is the model identifier sent with each classification request
	Model string
}

// SearchConfig holds search capability settings
type SearchConfig struct {
	// APIKey is the capability credential; empty disables the analyzer
	APIKey string

	// Endpoint is the search endpoint URL
	Endpoint string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  getEnvOrDefault("LOG_FILE", ""),
		},
		Analysis: AnalysisConfig{
			Classifier: ClassifierConfig{
				APIKey:   getEnvOrDefault("CLASSIFIER_API_KEY", ""),
				Endpoint: getEnvOrDefault("CLASSIFIER_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
				Model:    getEnvOrDefault("CLASSIFIER_MODEL", "gpt-4o-mini"),
			},
			Search: SearchConfig{
				APIKey:   getEnvOrDefault("SEARCH_API_KEY", ""),
				Endpoint: getEnvOrDefault("SEARCH_ENDPOINT", "https://serpapi.com/search"),
			},
			CallTimeout: getEnvAsIntOrDefault("ANALYSIS_CALL_TIMEOUT", 10),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Analysis.CallTimeout < 1 {
		return errors.New("analysis call timeout must be at least 1 second")
	}

	if c.Analysis.Classifier.APIKey != "" && c.Analysis.Classifier.Endpoint == "" {
		return errors.New("classifier endpoint cannot be empty when a classifier API key is set")
	}

	if c.Analysis.Search.APIKey != "" && c.Analysis.Search.Endpoint == "" {
		return errors.New("search endpoint cannot be empty when a search API key is set")
	}

	return nil
}
