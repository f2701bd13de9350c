// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServerInfo is the body returned by GET /server/info on a candidate backend.
// ServerURL is the only field the locator relies on; the rest is informational.
type ServerInfo struct {
	ServerURL   string `json:"server_url"`
	Environment string `json:"environment,omitempty"`
	Version     string `json:"version,omitempty"`
}
