package helper

import "os"

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// LoadConfigFromEnv loads server configuration from environment variables
func LoadConfigFromEnv() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("APP_PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
