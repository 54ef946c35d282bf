package context

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const contextsFileName = "contexts.yaml"

// Storage provides mutex-guarded access to contexts.yaml.
type Storage struct {
	mu         sync.RWMutex
	configPath string
}

// NewStorageWithPath creates a Storage for contexts.yaml in configPath,
// normally the routerstat config directory.
func NewStorageWithPath(configPath string) *Storage {
	return &Storage{
		configPath: configPath,
	}
}

func (s *Storage) filePath() string {
	return filepath.Join(s.configPath, contextsFileName)
}

// Load reads contexts.yaml. A missing file yields an empty ContextConfig.
func (s *Storage) Load() (*ContextConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadLocked()
}

func (s *Storage) loadLocked() (*ContextConfig, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ContextConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read contexts file: %w", err)
	}

	var config ContextConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse contexts file: %w", err)
	}

	return &config, nil
}

// Save writes config to contexts.yaml, creating the directory if needed.
func (s *Storage) Save(config *ContextConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(config)
}

func (s *Storage) saveLocked(config *ContextConfig) error {
	if err := os.MkdirAll(s.configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal contexts config: %w", err)
	}

	if err := os.WriteFile(s.filePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write contexts file: %w", err)
	}

	return nil
}

// update applies fn to the loaded config under the write lock and saves
// the result when fn succeeds.
func (s *Storage) update(fn func(*ContextConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(config); err != nil {
		return err
	}
	return s.saveLocked(config)
}

// GetCurrentContext returns the current context, or nil when none is set
// or it no longer exists.
func (s *Storage) GetCurrentContext() (*Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}

	if config.CurrentContext == "" {
		return nil, nil
	}

	return config.GetContext(config.CurrentContext), nil
}

// GetCurrentContextName returns the current context name, or "".
func (s *Storage) GetCurrentContextName() (string, error) {
	config, err := s.Load()
	if err != nil {
		return "", err
	}

	return config.CurrentContext, nil
}

// SetCurrentContext selects an existing context.
func (s *Storage) SetCurrentContext(name string) error {
	return s.update(func(config *ContextConfig) error {
		if !config.HasContext(name) {
			return &ContextNotFoundError{Name: name}
		}
		config.CurrentContext = name
		return nil
	})
}

// AddContext stores a new context. Adding an existing name fails.
func (s *Storage) AddContext(ctx Context) error {
	if err := ValidateContextName(ctx.Name); err != nil {
		return err
	}
	if ctx.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}

	return s.update(func(config *ContextConfig) error {
		if config.HasContext(ctx.Name) {
			return fmt.Errorf("context %q already exists", ctx.Name)
		}
		config.AddOrUpdateContext(ctx)
		return nil
	})
}

// DeleteContext removes a context by name.
func (s *Storage) DeleteContext(name string) error {
	return s.update(func(config *ContextConfig) error {
		if !config.RemoveContext(name) {
			return &ContextNotFoundError{Name: name}
		}
		return nil
	})
}

// ListContexts returns all defined contexts.
func (s *Storage) ListContexts() ([]Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}

	return config.Contexts, nil
}

// GetContext returns the named context, or nil if it does not exist.
func (s *Storage) GetContext(name string) (*Context, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}

	return config.GetContext(name), nil
}

// GetContextNames returns all context names, for shell completion.
func (s *Storage) GetContextNames() ([]string, error) {
	config, err := s.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(config.Contexts))
	for i, ctx := range config.Contexts {
		names[i] = ctx.Name
	}
	return names, nil
}
