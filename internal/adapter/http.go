package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-webapp-locator/internal/logger"
	"github.com/MKhiriev/go-webapp-locator/internal/utils"
	"github.com/MKhiriev/go-webapp-locator/models"
)

// ServerInfoPath is the endpoint every candidate backend exposes.
const ServerInfoPath = "/server/info"

const traceIDHeader = "X-Trace-ID"

type httpServerInfoAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerInfoAdapter constructs an HTTP/REST implementation of
// [ServerInfoAdapter]. timeout is applied to every request as the resty
// client timeout; the locator enforces its own per-probe deadline on top.
func NewHTTPServerInfoAdapter(timeout time.Duration, logger *logger.Logger) ServerInfoAdapter {
	return &httpServerInfoAdapter{
		client: utils.NewHTTPClient(timeout),
		logger: logger,
	}
}

// ServerInfo implements [ServerInfoAdapter].
func (h *httpServerInfoAdapter) ServerInfo(ctx context.Context, baseURL string) (models.ServerInfo, error) {
	base, err := utils.NormalizeBaseURL(baseURL)
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w %q: %w", ErrInvalidBaseURL, baseURL, err)
	}

	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(base + ServerInfoPath)
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("server info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, err
	}

	var info models.ServerInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.ServerInfo{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	info.ServerURL = strings.TrimSpace(info.ServerURL)
	if info.ServerURL == "" {
		return models.ServerInfo{}, ErrMissingServerURL
	}

	logger.FromContext(ctx, h.logger).Debug().
		Str("candidate", base).
		Str("server_url", info.ServerURL).
		Str("environment", info.Environment).
		Str("version", info.Version).
		Msg("server info received")

	return info, nil
}
