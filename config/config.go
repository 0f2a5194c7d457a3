package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Blob storage configuration
	AWSRegion    string
	S3BucketName string

	// Public base URL the presentation layer uses for uploaded images
	ImageBaseURL string
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ServerHost:   getEnv("SERVER_HOST", "0.0.0.0"),
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "foodies"),
		DBSSLMode:    getEnv("DB_SSL_MODE", "disable"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		S3BucketName: getEnv("S3_BUCKET_NAME", "foodies-meal-images"),
		ImageBaseURL: os.Getenv("IMAGE_BASE_URL"),
	}

	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.S3BucketName)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
