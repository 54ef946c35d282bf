package config

import "time"

// Config is the top-level configuration structure for routerstat.
type Config struct {
	// Endpoint is the management endpoint of the router.
	Endpoint string `yaml:"endpoint,omitempty"`
	// Transport is http, streamable-http or sse.
	Transport string `yaml:"transport,omitempty"`
	// Timeout bounds each management request.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Limit is the default row limit for limited reports.
	Limit int `yaml:"limit,omitempty"`
	// Output is the default output format.
	Output string    `yaml:"output,omitempty"`
	TLS    TLSConfig `yaml:"tls,omitempty"`
}

// TLSConfig holds the client TLS material used for https endpoints.
type TLSConfig struct {
	CACert             string `yaml:"caCert,omitempty"`
	Cert               string `yaml:"cert,omitempty"`
	Key                string `yaml:"key,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify,omitempty"`
}
