package adapter

import "errors"

// Sentinel errors returned by [ServerInfoAdapter] implementations. Callers
// classify probe failures with [errors.Is].
var (
	ErrInvalidBaseURL = errors.New("invalid candidate base url")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("server info endpoint not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	ErrDecodeResponse   = errors.New("error decoding server info response")
	ErrMissingServerURL = errors.New("server info response has no server_url")
)
