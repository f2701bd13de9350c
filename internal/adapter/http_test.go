// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-webapp-locator/internal/logger"
	"github.com/MKhiriev/go-webapp-locator/internal/utils"
	"github.com/MKhiriev/go-webapp-locator/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) ServerInfoAdapter {
	t.Helper()
	return NewHTTPServerInfoAdapter(2*time.Second, logger.Nop())
}

// ── success ─────────────────────────────────────────────────────────────────

func TestServerInfo_Success(t *testing.T) {
	want := models.ServerInfo{ServerURL: "https://backend.example.com", Environment: "production", Version: "1.4.0"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, ServerInfoPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestServerInfo_TrailingSlashInBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ServerInfoPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL+"/")

	require.NoError(t, err)
	assert.Equal(t, "https://x.example.com", got.ServerURL)
}

func TestServerInfo_ExtraFieldsIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com","uptime":12345,"region":"eu"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "https://x.example.com", got.ServerURL)
}

func TestServerInfo_SendsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get(traceIDHeader))
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com"}`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-1")
	_, err := newTestAdapter(t).ServerInfo(ctx, srv.URL)

	require.NoError(t, err)
}

func TestServerInfo_NoTraceID_NoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(traceIDHeader))
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.NoError(t, err)
}

func TestServerInfo_LogsWithContextLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com"}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	traced := &logger.Logger{Logger: zerolog.New(&buf)}
	ctx := traced.WithTraceID("trace-abc").WithContext(context.Background())

	_, err := newTestAdapter(t).ServerInfo(ctx, srv.URL)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server info received", entry["message"])
	assert.Equal(t, "trace-abc", entry["trace_id"])
	assert.Equal(t, "https://x.example.com", entry["server_url"])
}

func TestServerInfo_NoContextLogger_UsesOwnLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"server_url":"https://x.example.com"}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	a := NewHTTPServerInfoAdapter(time.Second, &logger.Logger{Logger: zerolog.New(&buf)})

	_, err := a.ServerInfo(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "server info received")
	assert.NotContains(t, buf.String(), "trace_id")
}

// ── status mapping ──────────────────────────────────────────────────────────

func TestServerInfo_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "400", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "401", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "403", status: http.StatusForbidden, want: ErrForbidden},
		{name: "404", status: http.StatusNotFound, want: ErrNotFound},
		{name: "500", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "502", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "503", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{name: "504", status: http.StatusGatewayTimeout, want: ErrGatewayTimeout},
		{name: "418", status: http.StatusTeapot, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"server_url":"https://ignored.example.com"}`))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── body failures ───────────────────────────────────────────────────────────

func TestServerInfo_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestServerInfo_MissingServerURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"environment":"production"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingServerURL)
}

func TestServerInfo_BlankServerURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"server_url":"   "}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrMissingServerURL)
}

func TestServerInfo_TrimsServerURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"server_url":"  https://x.example.com \n"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ServerInfo(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "https://x.example.com", got.ServerURL)
}

// ── transport failures ──────────────────────────────────────────────────────

func TestServerInfo_InvalidBaseURL(t *testing.T) {
	_, err := newTestAdapter(t).ServerInfo(context.Background(), "not a url")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestServerInfo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t).ServerInfo(context.Background(), url)

	assert.Error(t, err)
}

func TestServerInfo_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := newTestAdapter(t).ServerInfo(ctx, srv.URL)

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
