package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"routerstat/pkg/logging"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "routerstat"
	configFileName = "config.yaml"
	dotEnvFileName = ".env"
)

// Environment variables overlaid on config.yaml.
const (
	EnvEndpoint    = "ROUTERSTAT_ENDPOINT"
	EnvTransport   = "ROUTERSTAT_TRANSPORT"
	EnvTimeout     = "ROUTERSTAT_TIMEOUT"
	EnvLimit       = "ROUTERSTAT_LIMIT"
	EnvOutput      = "ROUTERSTAT_OUTPUT"
	EnvTLSCACert   = "ROUTERSTAT_TLS_CA_CERT"
	EnvTLSCert     = "ROUTERSTAT_TLS_CERT"
	EnvTLSKey      = "ROUTERSTAT_TLS_KEY"
	EnvTLSInsecure = "ROUTERSTAT_TLS_INSECURE"
)

// GetDefaultConfigPath returns $XDG_CONFIG_HOME/routerstat.
func GetDefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// LoadConfig loads config.yaml from configPath on top of the defaults and
// applies ROUTERSTAT_* overrides. A .env file in the working directory is
// read first; it never replaces variables already set.
func LoadConfig(configPath string) (Config, error) {
	if err := godotenv.Load(dotEnvFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn("ConfigLoader", "Ignoring unreadable %s: %v", dotEnvFileName, err)
	}

	config := GetDefaultConfig()
	configFilePath := filepath.Join(configPath, configFileName)

	data, err := os.ReadFile(configFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
	case err != nil:
		return Config{}, fmt.Errorf("failed to read %s: %w", configFilePath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
		}
		logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	}

	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", configFilePath, err)
	}
	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		config.Endpoint = v
	}
	if v := os.Getenv(EnvTransport); v != "" {
		config.Transport = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		config.Output = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		config.Timeout = d
	}
	if v := os.Getenv(EnvLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLimit, v, err)
		}
		config.Limit = n
	}
	if v := os.Getenv(EnvTLSCACert); v != "" {
		config.TLS.CACert = v
	}
	if v := os.Getenv(EnvTLSCert); v != "" {
		config.TLS.Cert = v
	}
	if v := os.Getenv(EnvTLSKey); v != "" {
		config.TLS.Key = v
	}
	if v := os.Getenv(EnvTLSInsecure); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTLSInsecure, v, err)
		}
		config.TLS.InsecureSkipVerify = insecure
	}
	return nil
}
