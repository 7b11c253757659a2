// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package kb

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLocalPath = "TRIAGE_KB_LOCAL"
	EnvRemoteURL = "TRIAGE_KB_REMOTE"
)

// DefaultFetchTimeout bounds the single remote fetch attempt.
const DefaultFetchTimeout = 10 * time.Second

// Config holds configuration for the knowledge base source.
type Config struct {
	// LocalPath is the local filesystem path for the knowledge base CSV.
	// If the file exists it is used as-is; otherwise it is the download
	// target for the remote object.
	LocalPath string

	// RemoteURL is an optional remote object URL used only when LocalPath
	// is absent. Empty disables the fetch-on-miss step.
	RemoteURL string

	// FetchTimeout bounds the remote download attempt.
	// Default: DefaultFetchTimeout.
	FetchTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithLocalPath sets the local CSV path.
func WithLocalPath(path string) ConfigOption {
	return func(c *Config) {
		c.LocalPath = path
	}
}

// WithRemoteURL sets the remote object URL for fetch-on-miss.
func WithRemoteURL(url string) ConfigOption {
	return func(c *Config) {
		c.RemoteURL = url
	}
}

// WithFetchTimeout sets the remote fetch timeout.
func WithFetchTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.FetchTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults: the knowledge base
// materializes under the system temp directory and no remote source is set.
func DefaultConfig() *Config {
	return &Config{
		LocalPath:    filepath.Join(os.TempDir(), "triage_kb.csv"),
		FetchTimeout: DefaultFetchTimeout,
	}
}

// NewConfig creates a Config with default values and applies the provided
// options. This is the recommended way to create a Config.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ConfigFromEnv creates a Config from the TRIAGE_KB_LOCAL and
// TRIAGE_KB_REMOTE environment variables, falling back to defaults for
// anything unset. The variables are read once; later changes to the
// environment do not affect an existing Config.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if path := os.Getenv(EnvLocalPath); path != "" {
		cfg.LocalPath = path
	}
	if url := os.Getenv(EnvRemoteURL); url != "" {
		cfg.RemoteURL = url
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.LocalPath == "" {
		return errors.New("kb config: LocalPath is required")
	}
	if c.FetchTimeout <= 0 {
		return errors.New("kb config: FetchTimeout must be positive")
	}
	return nil
}
