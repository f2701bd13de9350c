package models

import "time"

// ProbeStatus classifies the outcome of a single probe.
type ProbeStatus string

const (
	ProbeStatusOK          ProbeStatus = "ok"
	ProbeStatusTimeout     ProbeStatus = "timeout"
	ProbeStatusUnreachable ProbeStatus = "unreachable"
	ProbeStatusBadStatus   ProbeStatus = "bad_status"
	ProbeStatusBadBody     ProbeStatus = "bad_body"
	ProbeStatusCancelled   ProbeStatus = "cancelled"
)

// ProbeResult describes what happened when one candidate was probed.
type ProbeResult struct {
	Candidate string        `json:"candidate"`
	Status    ProbeStatus   `json:"status"`
	ServerURL string        `json:"serverUrl,omitempty"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency"`
}

// OK reports whether the probe produced a usable server URL.
func (r ProbeResult) OK() bool {
	return r.Status == ProbeStatusOK
}
