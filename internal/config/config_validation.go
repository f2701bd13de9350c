// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-webapp-locator/internal/utils"
	"github.com/MKhiriev/go-webapp-locator/models"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Locator.validate(); err != nil {
		return err
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	switch cfg.Output.Format {
	case "", OutputFormatJSON, OutputFormatText:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	return nil
}

func (l Locator) validate() error {
	for i, candidate := range l.Candidates {
		if _, err := utils.NormalizeBaseURL(candidate); err != nil {
			return fmt.Errorf("%w: candidate #%d %q: %w", ErrInvalidLocatorConfigs, i, candidate, err)
		}
	}

	for name, raw := range map[string]string{
		"default url":     l.DefaultURL,
		"local url":       l.LocalURL,
		"development url": l.DevelopmentURL,
	} {
		if raw == "" {
			continue
		}
		if _, err := utils.NormalizeBaseURL(raw); err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidLocatorConfigs, name, raw, err)
		}
	}

	if l.ProbeTimeout < 0 {
		return fmt.Errorf("%w: negative probe timeout %s", ErrInvalidLocatorConfigs, l.ProbeTimeout)
	}

	if l.ForceEnvironment != "" && !models.EnvironmentName(l.ForceEnvironment).IsValid() {
		return fmt.Errorf("%w: %q, want one of %v", ErrInvalidEnvironment, l.ForceEnvironment, models.EnvironmentNames())
	}

	return nil
}
