package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Locator struct {
		Candidates       []string `json:"candidates"`
		DefaultURL       string   `json:"default_url"`
		LocalURL         string   `json:"local_url"`
		DevelopmentURL   string   `json:"development_url"`
		ProbeTimeout     Duration `json:"probe_timeout"`
		ForceEnvironment string   `json:"force_environment"`
		Embedded         bool     `json:"embedded"`
		Hostname         string   `json:"hostname"`
	} `json:"locator,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Output struct {
		Format   string `json:"format"`
		Copy     bool   `json:"copy"`
		ProbeAll bool   `json:"probe_all"`
		Bindings bool   `json:"bindings"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Locator: Locator{
			Candidates:       jsonCfg.Locator.Candidates,
			DefaultURL:       jsonCfg.Locator.DefaultURL,
			LocalURL:         jsonCfg.Locator.LocalURL,
			DevelopmentURL:   jsonCfg.Locator.DevelopmentURL,
			ProbeTimeout:     time.Duration(jsonCfg.Locator.ProbeTimeout),
			ForceEnvironment: jsonCfg.Locator.ForceEnvironment,
			Embedded:         jsonCfg.Locator.Embedded,
			Hostname:         jsonCfg.Locator.Hostname,
		},
		Log: Log{Level: jsonCfg.Log.Level},
		Output: Output{
			Format:   jsonCfg.Output.Format,
			Copy:     jsonCfg.Output.Copy,
			ProbeAll: jsonCfg.Output.ProbeAll,
			Bindings: jsonCfg.Output.Bindings,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
