package config

import (
	"encoding/json"
	"os"

	// Packages
	"github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config carries the values needed to address the target service: the base
// endpoint URL and an optional path to an overrides file.
type Config struct {
	BaseURL  string `json:"base_url"`
	Filepath string `json:"-"`
}

// Opt is a functional option for configuration.
type Opt func(*Config) error

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// DefaultBaseURL is used when no base URL is given.
const DefaultBaseURL = "http://localhost"

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a configuration. When no base URL is set by an option or by the
// overrides file, the base URL defaults to DefaultBaseURL, so BaseURL is
// always non-empty after construction. An explicit WithBaseURL wins over a
// value loaded from the overrides file.
func New(opts ...Opt) (*Config, error) {
	c := new(Config)

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Load endpoint overrides from the file, when given
	if c.Filepath != "" {
		overrides, err := load(c.Filepath)
		if err != nil {
			return nil, err
		}
		if c.BaseURL == "" && overrides.BaseURL != "" {
			c.BaseURL = overrides.BaseURL
		}
	}

	// Apply the default
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	// Return success
	return c, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithBaseURL sets the base endpoint URL.
func WithBaseURL(url string) Opt {
	return func(c *Config) error {
		c.BaseURL = url
		return nil
	}
}

// WithFilepath sets the path of a JSON overrides file. The file is read once
// at construction time.
func WithFilepath(path string) Opt {
	return func(c *Config) error {
		c.Filepath = path
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Config) String() string {
	return types.Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides Config
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}
	return &overrides, nil
}
