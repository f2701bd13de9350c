package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLocatorConfigs indicates invalid locator settings
	// (for example, a candidate that is not an absolute URL or a zero
	// probe timeout).
	ErrInvalidLocatorConfigs = errors.New("invalid locator configuration")
	// ErrInvalidEnvironment indicates a forced environment outside the
	// local/development/production set.
	ErrInvalidEnvironment = errors.New("invalid forced environment")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
