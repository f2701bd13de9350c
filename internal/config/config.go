// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// locator. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Locator holds the candidate list, fallback addresses, the probe
	// timeout and the injected host context.
	Locator Locator `envPrefix:"LOCATOR_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Output controls how the command prints its result.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Locator configures backend resolution.
type Locator struct {
	// Candidates are the backend base URLs probed in order when the app runs
	// embedded in the Telegram WebApp container.
	// Env: LOCATOR_CANDIDATES (comma separated)
	Candidates []string `env:"CANDIDATES" envSeparator:","`

	// DefaultURL is returned when every probe fails or when the host is
	// neither embedded nor local. It is also the production profile address.
	// Env: LOCATOR_DEFAULT_URL
	DefaultURL string `env:"DEFAULT_URL"`

	// LocalURL is returned when the page is served from a loopback host. It
	// is also the local profile address.
	// Env: LOCATOR_LOCAL_URL
	LocalURL string `env:"LOCAL_URL"`

	// DevelopmentURL is the development profile address.
	// Env: LOCATOR_DEVELOPMENT_URL
	DevelopmentURL string `env:"DEVELOPMENT_URL"`

	// ProbeTimeout bounds every single probe (e.g. "5s").
	// Env: LOCATOR_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// ForceEnvironment, when set to local, development or production,
	// bypasses probing and returns that profile verbatim.
	// Env: LOCATOR_FORCE_ENVIRONMENT
	ForceEnvironment string `env:"FORCE_ENVIRONMENT"`

	// Embedded reports that the caller runs inside the Telegram WebApp
	// container. Only embedded callers probe the candidates.
	// Env: LOCATOR_EMBEDDED
	Embedded bool `env:"EMBEDDED"`

	// Hostname is the host name of the page that asks for a backend.
	// Env: LOCATOR_HOSTNAME
	Hostname string `env:"HOSTNAME"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output controls the command-line presentation.
type Output struct {
	// Format is "json" or "text".
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Copy puts the resolved server URL on the system clipboard.
	// Env: OUTPUT_COPY
	Copy bool `env:"COPY"`

	// ProbeAll prints the outcome of every candidate instead of resolving.
	// Env: OUTPUT_PROBE_ALL
	ProbeAll bool `env:"PROBE_ALL"`

	// Bindings prints the WebApp DOM element bindings alongside the result.
	// Env: OUTPUT_BINDINGS
	Bindings bool `env:"BINDINGS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first source that sets a non-zero
// value wins, in this order:
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
