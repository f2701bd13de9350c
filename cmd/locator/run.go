package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-webapp-locator/internal/config"
	"github.com/MKhiriev/go-webapp-locator/internal/view"
	"github.com/MKhiriev/go-webapp-locator/models"
)

// resolver is the part of *locator.Locator the command needs.
type resolver interface {
	ResolveCurrentConfig(ctx context.Context) models.ResolvedConfig
	Probe(ctx context.Context) []models.ProbeResult
}

type jsonResult struct {
	models.ResolvedConfig
	Bindings *models.WebAppBindings `json:"bindings,omitempty"`
}

// run resolves (or probes) and writes the result to w in the configured
// format. It returns the resolved server URL, or "" in probe-all mode.
func run(ctx context.Context, r resolver, out config.Output, w io.Writer) (string, error) {
	if out.ProbeAll {
		results := r.Probe(ctx)
		if out.Format == config.OutputFormatText {
			_, err := fmt.Fprintln(w, view.RenderProbes(results))
			return "", err
		}
		return "", writeJSON(w, results)
	}

	resolved := r.ResolveCurrentConfig(ctx)

	var bindings *models.WebAppBindings
	if out.Bindings {
		b := models.DefaultWebAppBindings()
		bindings = &b
	}

	if out.Format == config.OutputFormatText {
		_, err := fmt.Fprintln(w, view.RenderConfig(resolved, bindings))
		return resolved.ServerURL, err
	}

	return resolved.ServerURL, writeJSON(w, jsonResult{ResolvedConfig: resolved, Bindings: bindings})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
