package config

import "time"

const (
	DefaultServerURL      = "https://webapp-backend.onrender.com"
	DefaultLocalURL       = "http://localhost:8000"
	DefaultDevelopmentURL = "https://webapp-backend-dev.onrender.com"
	DefaultProbeTimeout   = 5 * time.Second
	DefaultLogLevel       = "info"
	DefaultOutputFormat   = OutputFormatJSON
)

const (
	OutputFormatJSON = "json"
	OutputFormatText = "text"
)

// DefaultCandidates returns the built-in candidate backends in probe order.
func DefaultCandidates() []string {
	return []string{
		"https://webapp-backend.onrender.com",
		"https://webapp-backend.up.railway.app",
		"https://webapp-backend.fly.dev",
	}
}

// Default returns the built-in configuration. It is merged last, so it only
// fills fields no other source has set.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Locator: Locator{
			Candidates:     DefaultCandidates(),
			DefaultURL:     DefaultServerURL,
			LocalURL:       DefaultLocalURL,
			DevelopmentURL: DefaultDevelopmentURL,
			ProbeTimeout:   DefaultProbeTimeout,
		},
		Log:    Log{Level: DefaultLogLevel},
		Output: Output{Format: DefaultOutputFormat},
	}
}
