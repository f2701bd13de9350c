package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// URLList is a comma separated list of URLs. It implements flag.Value.
type URLList []string

// String joins the list with commas.
func (l *URLList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas and replaces the list. Blank items are dropped.
func (l *URLList) Set(s string) error {
	items := make([]string, 0, strings.Count(s, ",")+1)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*l = items
	return nil
}

// ParseFlags parses command-line flags from args (without the program name).
//
// Flags:
//
//	-candidates comma separated candidate base URLs, probed in order
//	-default-url fallback/production backend URL
//	-local-url backend URL used on loopback hosts
//	-development-url development profile backend URL
//	-probe-timeout per-probe timeout (e.g., "5s")
//	-force-env local|development|production
//	-embedded caller runs inside the Telegram WebApp container
//	-hostname host name of the calling page
//	-log-level zerolog level
//	-o output format: json|text
//	-copy copy the resolved server URL to the clipboard
//	-probe-all report every candidate instead of resolving
//	-bindings print the WebApp DOM bindings
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var candidates URLList
	var defaultURL, localURL, developmentURL string
	var probeTimeout time.Duration
	var forceEnv string
	var embedded bool
	var hostname string
	var logLevel string
	var outputFormat string
	var copyURL, probeAll, bindings bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("locator", flag.ContinueOnError)
	fs.Var(&candidates, "candidates", "Comma separated candidate base URLs")
	fs.StringVar(&defaultURL, "default-url", "", "Fallback backend URL")
	fs.StringVar(&localURL, "local-url", "", "Backend URL for loopback hosts")
	fs.StringVar(&developmentURL, "development-url", "", "Development profile backend URL")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Per-probe timeout (e.g., 5s)")
	fs.StringVar(&forceEnv, "force-env", "", "Forced environment: local, development or production")
	fs.BoolVar(&embedded, "embedded", false, "Caller runs inside the Telegram WebApp container")
	fs.StringVar(&hostname, "hostname", "", "Host name of the calling page")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&outputFormat, "o", "", "Output format: json or text")
	fs.BoolVar(&copyURL, "copy", false, "Copy the resolved server URL to the clipboard")
	fs.BoolVar(&probeAll, "probe-all", false, "Probe every candidate and print the outcomes")
	fs.BoolVar(&bindings, "bindings", false, "Print the WebApp DOM bindings")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Locator: Locator{
			Candidates:       candidates,
			DefaultURL:       defaultURL,
			LocalURL:         localURL,
			DevelopmentURL:   developmentURL,
			ProbeTimeout:     probeTimeout,
			ForceEnvironment: forceEnv,
			Embedded:         embedded,
			Hostname:         hostname,
		},
		Log: Log{Level: logLevel},
		Output: Output{
			Format:   outputFormat,
			Copy:     copyURL,
			ProbeAll: probeAll,
			Bindings: bindings,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
