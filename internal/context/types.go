package context

import (
	"fmt"
	"regexp"
)

// ContextEnvVar is the environment variable name for overriding the current context.
const ContextEnvVar = "ROUTERSTAT_CONTEXT"

// maxContextNameLength is the maximum allowed length for context names.
const maxContextNameLength = 63

// contextNamePattern defines valid context name characters.
var contextNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)

// ContextSettings contains optional per-context settings that override the
// config file when the context is in use.
type ContextSettings struct {
	// Output is the default output format for this context.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	// Limit is the default row limit for this context.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// Context names one router management endpoint.
type Context struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
	// Transport is http, streamable-http or sse. Empty means the configured
	// transport.
	Transport string           `yaml:"transport,omitempty"`
	Settings  *ContextSettings `yaml:"settings,omitempty"`
}

// ContextConfig is the root of contexts.yaml.
type ContextConfig struct {
	CurrentContext string    `yaml:"current-context,omitempty"`
	Contexts       []Context `yaml:"contexts,omitempty"`
}

// ContextNotFoundError is returned when a named context does not exist.
type ContextNotFoundError struct {
	Name string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("context %q not found", e.Name)
}

// ValidateContextName checks that name is 1 to 63 lowercase letters, digits
// or hyphens, starting and ending with an alphanumeric character.
func ValidateContextName(name string) error {
	if name == "" {
		return fmt.Errorf("context name cannot be empty")
	}

	if len(name) > maxContextNameLength {
		return fmt.Errorf("context name cannot exceed %d characters", maxContextNameLength)
	}

	if !contextNamePattern.MatchString(name) {
		return fmt.Errorf("context name must contain only lowercase letters, numbers, and hyphens, and must start and end with an alphanumeric character")
	}

	return nil
}

// GetContext returns the context with the given name, or nil if not found.
func (c *ContextConfig) GetContext(name string) *Context {
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			return &c.Contexts[i]
		}
	}
	return nil
}

// HasContext reports whether a context with the given name exists.
func (c *ContextConfig) HasContext(name string) bool {
	return c.GetContext(name) != nil
}

// AddOrUpdateContext replaces the context with the same name, or appends it.
func (c *ContextConfig) AddOrUpdateContext(ctx Context) {
	for i := range c.Contexts {
		if c.Contexts[i].Name == ctx.Name {
			c.Contexts[i] = ctx
			return
		}
	}
	c.Contexts = append(c.Contexts, ctx)
}

// RemoveContext removes the named context and clears CurrentContext if it
// pointed at it. It reports whether the context existed.
func (c *ContextConfig) RemoveContext(name string) bool {
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			c.Contexts = append(c.Contexts[:i], c.Contexts[i+1:]...)
			if c.CurrentContext == name {
				c.CurrentContext = ""
			}
			return true
		}
	}
	return false
}
