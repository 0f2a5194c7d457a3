package config

import (
	"fmt"
	"strings"
)

var productionRequired = map[string]func(*Config) string{
	"DB_USER":        func(c *Config) string { return c.DBUser },
	"DB_PASSWORD":    func(c *Config) string { return c.DBPassword },
	"DB_HOST":        func(c *Config) string { return c.DBHost },
	"DB_NAME":        func(c *Config) string { return c.DBName },
	"AWS_REGION":     func(c *Config) string { return c.AWSRegion },
	"S3_BUCKET_NAME": func(c *Config) string { return c.S3BucketName },
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}

	// Development and test fall back to local defaults; production must be
	// configured explicitly.
	if !IsProduction() {
		return nil
	}

	var errors []string
	for name, get := range productionRequired {
		if get(cfg) == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", name))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
