package config

import "time"

const (
	DefaultEndpoint  = "http://localhost:8672/management"
	DefaultTransport = "http"
	DefaultTimeout   = 5 * time.Second
	DefaultLimit     = 1000
	DefaultOutput    = "table"
)

// GetDefaultConfig returns the configuration used when no config.yaml exists.
func GetDefaultConfig() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		Transport: DefaultTransport,
		Timeout:   DefaultTimeout,
		Limit:     DefaultLimit,
		Output:    DefaultOutput,
	}
}
