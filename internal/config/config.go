package config

import (
	"os"
	"strconv"

	"marksheet/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Pipeline PipelineConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds upload validation settings
type UploadConfig struct {
	MaxSizeMB int64
}

// MaxSizeBytes returns the upload limit in bytes.
func (u UploadConfig) MaxSizeBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

// PipelineConfig holds processing settings
type PipelineConfig struct {
	IncludeSummary bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	maxSizeMB, err := getEnvInt64("MAX_UPLOAD_MB", 50)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load upload configuration")
	}
	if maxSizeMB <= 0 {
		return nil, errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}

	includeSummary, err := getEnvBool("INCLUDE_SUMMARY", true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pipeline configuration")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxSizeMB: maxSizeMB,
		},
		Pipeline: PipelineConfig{
			IncludeSummary: includeSummary,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.ConfigInvalid(key + " must be a boolean")
	}
	return b, nil
}
