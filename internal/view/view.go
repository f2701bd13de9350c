// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders locator results for a terminal.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-webapp-locator/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderConfig renders a resolved config, plus the DOM bindings when
// bindings is non-nil.
func RenderConfig(cfg models.ResolvedConfig, bindings *models.WebAppBindings) string {
	lines := []string{
		titleStyle.Render("WebApp backend"),
		row("server", cfg.ServerURL),
		row("api", cfg.APIURL),
	}

	if bindings != nil {
		lines = append(lines,
			"",
			titleStyle.Render("Contact form"),
			row("form", "#"+bindings.ContactForm.Form),
			row("name", "#"+bindings.ContactForm.Name),
			row("email", "#"+bindings.ContactForm.Email),
			row("message", "#"+bindings.ContactForm.Message),
			row("submit", "#"+bindings.ContactForm.Submit),
			row("status", "#"+bindings.ContactForm.Status),
			"",
			titleStyle.Render("Mobile navigation"),
			row("toggle", "#"+bindings.MobileNav.Toggle),
			row("menu", "#"+bindings.MobileNav.Menu),
		)
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderProbes renders one line per probed candidate.
func RenderProbes(results []models.ProbeResult) string {
	if len(results) == 0 {
		return boxStyle.Render("no candidates configured")
	}

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, titleStyle.Render("Candidates"))
	for i, r := range results {
		lines = append(lines, probeLine(i+1, r))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func probeLine(n int, r models.ProbeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s ", n, r.Candidate)

	if r.OK() {
		b.WriteString(okStyle.Render(fmt.Sprintf("%s -> %s", r.Status, r.ServerURL)))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("%s: %s", r.Status, r.Error)))
	}
	fmt.Fprintf(&b, " (%s)", r.Latency.Round(time.Millisecond))

	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
