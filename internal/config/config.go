// Package config loads the YAML endpoint configuration. URLs may reference
// environment variables with ${VAR} syntax so API keys stay out of the
// config file; validation is strict and there are no hardcoded fallbacks.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root structure of the YAML file: the JSON-RPC endpoints to
// query plus defaults that apply to all of them.
type Config struct {
	Endpoints []Endpoint `yaml:"endpoints"`
	Defaults  Defaults   `yaml:"defaults"`
}

// Endpoint is a single JSON-RPC node. A zero Timeout inherits
// Defaults.Timeout.
type Endpoint struct {
	Name    string        `yaml:"name"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

type Defaults struct {
	Timeout    time.Duration `yaml:"timeout"`     // HTTP request timeout, e.g. "10s"
	MaxRetries int           `yaml:"max_retries"` // transport retry attempts, 0 = none
}

// Validate checks required fields and applies the default timeout to
// endpoints that don't set their own.
func (c *Config) Validate() error {
	if c.Defaults.Timeout == 0 {
		return fmt.Errorf("defaults.timeout is required")
	}
	if c.Defaults.MaxRetries < 0 {
		return fmt.Errorf("defaults.max_retries must be >= 0")
	}
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}

	for i := range c.Endpoints {
		ep := &c.Endpoints[i]
		if ep.Name == "" {
			return fmt.Errorf("endpoint %d: name is required", i)
		}
		if ep.Timeout == 0 {
			ep.Timeout = c.Defaults.Timeout
		}
		if ep.URL == "" {
			return fmt.Errorf("endpoint %s: url is required", ep.Name)
		}

		u, err := url.Parse(ep.URL)
		if err != nil {
			return fmt.Errorf("endpoint %s: invalid url: %w", ep.Name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("endpoint %s: invalid url (missing scheme or host)", ep.Name)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %s: invalid url scheme %q (expected http or https)", ep.Name, u.Scheme)
		}
	}

	return nil
}

// Endpoint returns the named endpoint, or the first one when name is empty.
func (c *Config) Endpoint(name string) (*Endpoint, error) {
	if name == "" {
		return &c.Endpoints[0], nil
	}
	for i := range c.Endpoints {
		if c.Endpoints[i].Name == name {
			return &c.Endpoints[i], nil
		}
	}
	return nil, fmt.Errorf("endpoint %q not found in config", name)
}

// Load reads, env-expands, parses and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
