// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvironmentName identifies one of the statically defined backend profiles.
// The set is closed: only [EnvironmentLocal], [EnvironmentDevelopment] and
// [EnvironmentProduction] are recognised. The zero value means no profile is
// forced and the backend must be resolved at call time.
type EnvironmentName string

const (
	EnvironmentLocal       EnvironmentName = "local"
	EnvironmentDevelopment EnvironmentName = "development"
	EnvironmentProduction  EnvironmentName = "production"
)

// EnvironmentNames lists every recognised profile name in a stable order.
func EnvironmentNames() []EnvironmentName {
	return []EnvironmentName{EnvironmentLocal, EnvironmentDevelopment, EnvironmentProduction}
}

// IsValid reports whether n is one of the recognised profile names.
func (n EnvironmentName) IsValid() bool {
	switch n {
	case EnvironmentLocal, EnvironmentDevelopment, EnvironmentProduction:
		return true
	default:
		return false
	}
}

func (n EnvironmentName) String() string {
	return string(n)
}

// EnvironmentProfile is a named, immutable pair of backend addresses.
type EnvironmentProfile struct {
	ServerURL string `json:"serverUrl"`
	APIURL    string `json:"apiUrl"`
}

// ResolvedConfig is the outcome of a single resolution. It is recomputed on
// every call and never cached.
type ResolvedConfig struct {
	ServerURL string `json:"serverUrl"`
	APIURL    string `json:"apiUrl"`
}
