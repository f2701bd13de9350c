// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to probe candidate backends.
//
// The primary abstraction is [ServerInfoAdapter], which decouples the locator
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerInfoAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] to classify a failed probe
// (e.g. [ErrNotFound] for 404, [ErrDecodeResponse] for a malformed body).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-webapp-locator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_info_adapter_mock.go -package=mock

// ServerInfoAdapter fetches the advertised server information of a single
// candidate backend.
type ServerInfoAdapter interface {
	// ServerInfo sends GET {baseURL}/server/info and returns the decoded body.
	// It returns an error when the request fails, the context expires, the
	// status is not 2xx, the body cannot be decoded, or server_url is empty.
	// Surrounding whitespace is trimmed from server_url, so a whitespace-only
	// value counts as empty.
	// The request is attempted once; there are no retries.
	ServerInfo(ctx context.Context, baseURL string) (models.ServerInfo, error)
}
