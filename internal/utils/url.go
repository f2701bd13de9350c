// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyAddress      = errors.New("empty address")
	ErrAddressIncomplete = errors.New("address must include host and scheme")
)

// NormalizeBaseURL trims surrounding whitespace and trailing slashes from raw
// and checks that it is an absolute URL with a scheme and a host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressIncomplete
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsLoopbackHost reports whether host names the local machine.
func IsLoopbackHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1", "[::1]":
		return true
	default:
		return false
	}
}
