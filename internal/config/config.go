// Package config loads runtime configuration from environment variables.
package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	Provider      string
	LogLevel      string
	LogFormat     string
	CourtListener CourtListenerConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		Provider:      envOrDefault(envProvider, defaultProvider),
		LogLevel:      envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:     envOrDefault(envLogFormat, defaultLogFormat),
		CourtListener: loadCourtListener(),
		Metrics:       loadMetrics(),
	}
}
