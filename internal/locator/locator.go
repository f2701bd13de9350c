// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator works out which backend a Telegram Mini App should talk to.
//
// A [Locator] either returns a statically defined environment profile, or
// resolves the backend at call time: callers embedded in the Telegram WebApp
// container probe a fixed, ordered list of candidates and take the first one
// that answers GET /server/info with a server_url; everyone else gets the
// local URL on loopback hosts and the default URL otherwise.
//
// Resolution never fails. Every probe error is logged and absorbed, and the
// default URL is the last resort. Nothing is cached: each call probes again.
package locator

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/MKhiriev/go-webapp-locator/internal/adapter"
	"github.com/MKhiriev/go-webapp-locator/internal/config"
	"github.com/MKhiriev/go-webapp-locator/internal/logger"
	"github.com/MKhiriev/go-webapp-locator/internal/utils"
	"github.com/MKhiriev/go-webapp-locator/models"
)

// APIPath is appended to a server URL to obtain the WebApp data endpoint.
const APIPath = "/webapp/data"

// Locator resolves the active backend. It holds no mutable state and is safe
// for concurrent use; concurrent calls simply probe independently.
type Locator struct {
	candidates   []string
	defaultURL   string
	localURL     string
	probeTimeout time.Duration

	forceEnvironment models.EnvironmentName
	embedded         bool
	hostname         string

	environments map[models.EnvironmentName]models.EnvironmentProfile

	adapter adapter.ServerInfoAdapter
	logger  *logger.Logger
}

// New builds a Locator from cfg. Zero-valued fields fall back to the
// built-in defaults from the config package. The forced environment and the
// host context (Embedded, Hostname) are fixed for the lifetime of the
// Locator.
func New(cfg config.Locator, serverInfoAdapter adapter.ServerInfoAdapter, logger *logger.Logger) *Locator {
	if cfg.Candidates == nil {
		cfg.Candidates = config.DefaultCandidates()
	}
	if cfg.DefaultURL == "" {
		cfg.DefaultURL = config.DefaultServerURL
	}
	if cfg.LocalURL == "" {
		cfg.LocalURL = config.DefaultLocalURL
	}
	if cfg.DevelopmentURL == "" {
		cfg.DevelopmentURL = config.DefaultDevelopmentURL
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = config.DefaultProbeTimeout
	}

	return &Locator{
		candidates:       append([]string(nil), cfg.Candidates...),
		defaultURL:       cfg.DefaultURL,
		localURL:         cfg.LocalURL,
		probeTimeout:     cfg.ProbeTimeout,
		forceEnvironment: models.EnvironmentName(cfg.ForceEnvironment),
		embedded:         cfg.Embedded,
		hostname:         cfg.Hostname,
		environments:     buildEnvironments(cfg),
		adapter:          serverInfoAdapter,
		logger:           logger,
	}
}

func buildEnvironments(cfg config.Locator) map[models.EnvironmentName]models.EnvironmentProfile {
	profile := func(serverURL string) models.EnvironmentProfile {
		return models.EnvironmentProfile{ServerURL: serverURL, APIURL: serverURL + APIPath}
	}

	return map[models.EnvironmentName]models.EnvironmentProfile{
		models.EnvironmentLocal:       profile(cfg.LocalURL),
		models.EnvironmentDevelopment: profile(cfg.DevelopmentURL),
		models.EnvironmentProduction:  profile(cfg.DefaultURL),
	}
}

// Environments returns a copy of the static profile table.
func (l *Locator) Environments() map[models.EnvironmentName]models.EnvironmentProfile {
	return maps.Clone(l.environments)
}

// ResolveServerURL returns the base URL of the backend to use. It never
// fails: when nothing better is found the default URL is returned.
func (l *Locator) ResolveServerURL(ctx context.Context) string {
	ctx, log := l.traced(ctx)

	if !l.embedded {
		if utils.IsLoopbackHost(l.hostname) {
			log.Debug().Str("hostname", l.hostname).Str("server_url", l.localURL).Msg("loopback host, using local server")
			return l.localURL
		}
		log.Debug().Str("hostname", l.hostname).Str("server_url", l.defaultURL).Msg("not embedded, using default server")
		return l.defaultURL
	}

	for _, candidate := range l.candidates {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("resolution cancelled, skipping remaining candidates")
			break
		}

		res := l.probe(ctx, candidate)
		if res.OK() {
			log.Info().
				Str("candidate", candidate).
				Str("server_url", res.ServerURL).
				Dur("latency", res.Latency).
				Msg("server resolved")
			return res.ServerURL
		}

		log.Warn().
			Str("candidate", candidate).
			Str("status", string(res.Status)).
			Str("error", res.Error).
			Dur("latency", res.Latency).
			Msg("candidate probe failed")
	}

	log.Info().Str("server_url", l.defaultURL).Msg("no candidate answered, using default server")
	return l.defaultURL
}

// ResolveAPIURL returns ResolveServerURL with the WebApp data path appended.
func (l *Locator) ResolveAPIURL(ctx context.Context) string {
	return l.ResolveServerURL(ctx) + APIPath
}

// ResolveCurrentConfig returns the forced environment profile verbatim when
// one is configured, and otherwise a freshly resolved server/API pair.
func (l *Locator) ResolveCurrentConfig(ctx context.Context) models.ResolvedConfig {
	if profile, ok := l.environments[l.forceEnvironment]; ok {
		l.logger.Debug().Str("environment", l.forceEnvironment.String()).Msg("using forced environment")
		return models.ResolvedConfig{ServerURL: profile.ServerURL, APIURL: profile.APIURL}
	}

	serverURL := l.ResolveServerURL(ctx)
	return models.ResolvedConfig{ServerURL: serverURL, APIURL: serverURL + APIPath}
}

// Probe checks every candidate in order, without stopping at the first
// success, and reports each outcome. It ignores the host context and the
// forced environment.
func (l *Locator) Probe(ctx context.Context) []models.ProbeResult {
	ctx, _ = l.traced(ctx)

	results := make([]models.ProbeResult, 0, len(l.candidates))
	for _, candidate := range l.candidates {
		results = append(results, l.probe(ctx, candidate))
	}
	return results
}

// traced attaches a fresh trace id to ctx unless it already carries one, and
// stores the trace-tagged logger in ctx for the adapter to pick up.
func (l *Locator) traced(ctx context.Context) (context.Context, *logger.Logger) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewTraceID()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := l.logger.WithTraceID(traceID)
	return log.WithContext(ctx), log
}

type probeReply struct {
	info models.ServerInfo
	err  error
}

// probe queries a single candidate under the per-probe deadline. The adapter
// call is raced against the deadline, so a transport that ignores ctx cannot
// hold the caller past probeTimeout.
func (l *Locator) probe(ctx context.Context, candidate string) models.ProbeResult {
	probeCtx, cancel := context.WithTimeout(ctx, l.probeTimeout)
	defer cancel()

	start := time.Now()
	replies := make(chan probeReply, 1)
	go func() {
		info, err := l.adapter.ServerInfo(probeCtx, candidate)
		replies <- probeReply{info: info, err: err}
	}()

	var reply probeReply
	select {
	case reply = <-replies:
	case <-probeCtx.Done():
		reply.err = probeCtx.Err()
	}

	if reply.err == nil && reply.info.ServerURL == "" {
		reply.err = adapter.ErrMissingServerURL
	}

	res := models.ProbeResult{Candidate: candidate, Latency: time.Since(start)}
	switch {
	case reply.err == nil:
		res.Status = models.ProbeStatusOK
		res.ServerURL = reply.info.ServerURL
		return res
	case errors.Is(reply.err, context.DeadlineExceeded), errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		res.Status = models.ProbeStatusTimeout
	case errors.Is(reply.err, context.Canceled), errors.Is(ctx.Err(), context.Canceled):
		res.Status = models.ProbeStatusCancelled
	default:
		res.Status = classify(reply.err)
	}
	res.Error = reply.err.Error()

	return res
}

func classify(err error) models.ProbeStatus {
	switch {
	case errors.Is(err, adapter.ErrDecodeResponse), errors.Is(err, adapter.ErrMissingServerURL):
		return models.ProbeStatusBadBody
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrGatewayTimeout),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return models.ProbeStatusBadStatus
	default:
		return models.ProbeStatusUnreachable
	}
}
