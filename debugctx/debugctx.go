// SPDX-License-Identifier: GPL-3.0-or-later

// Package debugctx holds the configuration that parameterizes one debug
// chain run and the mutable scratch handlers share while running it.
package debugctx

// DebugConfig is the pipeline input, read-only during a run.
//
// [NewDebugConfig] returns the documented defaults:
// Enabled=false (the master gate), DelayMS=0, ForceDisconnect=false,
// LogPacket=false, HTTPStatus=200, Probability=100. The zero value does
// not match them: because Go's zero value for an int is 0, callers that
// zero-value construct this struct directly get HTTPStatus=0 and
// Probability=0. HTTPStatus=0 is not the documented default and
// must not be relied upon as an "error code" (use [DebugContext.OverrideHTTPStatus]
// for that sentinel instead).
type DebugConfig struct {
	Enabled         bool
	DelayMS         uint32
	ForceDisconnect bool
	LogPacket       bool
	HTTPStatus      int32

	// Probability is the 0-100 chance (inclusive of 0, exclusive of
	// the gate running above 100) that the orchestrator runs the chain
	// at all for a given event, mirroring a debug point's sampling
	// rate. 100 means "always", matching the documented default below.
	// This field is consulted by the
	// orchestrator, not by the chain itself.
	Probability int
}

// NewDebugConfig returns a [DebugConfig] with the documented defaults.
func NewDebugConfig() DebugConfig {
	return DebugConfig{
		Enabled:         false,
		DelayMS:         0,
		ForceDisconnect: false,
		LogPacket:       false,
		HTTPStatus:      200,
		Probability:     100,
	}
}

// ResetDebugConfig re-initializes cfg in place to the documented
// defaults. This is the only sanctioned way to clear the master
// Enabled gate back to false once a [DebugConfig] has been mutated.
func ResetDebugConfig(cfg *DebugConfig) {
	*cfg = NewDebugConfig()
}

// DebugContext is per-event scratch, read/write, shared across the
// handlers invoked for a single [clientctx.ClientContext]. It is never
// shared across events: create one per event via [NewDebugContext].
type DebugContext struct {
	Config DebugConfig

	// RawRequest and RawResponse are populated on demand by handlers
	// that need the wire bytes (e.g. a handler recording a pcap-style
	// dump); nil until something writes to them.
	RawRequest  []byte
	RawResponse []byte

	// OverrideHTTPStatus is 0 ("unset") until a handler sets it to a
	// nonzero status code the orchestrator should impose on the
	// outgoing response.
	OverrideHTTPStatus int32

	// SkipCallback, when set during the request phase, tells the
	// orchestrator not to invoke the callback manager for this event.
	SkipCallback bool

	// DisconnectAfter, when set during the request phase, tells the
	// orchestrator to close the connection without sending a response;
	// when set during the response phase, the orchestrator sends the
	// response and then closes the connection.
	DisconnectAfter bool
}

// NewDebugContext returns a fresh [*DebugContext] for one event,
// carrying the given [DebugConfig].
func NewDebugContext(cfg DebugConfig) *DebugContext {
	return &DebugContext{Config: cfg}
}

// Reset re-initializes dctx to defaults with the given [DebugConfig].
// This is the only sanctioned way to clear the master Enabled gate
// back to false after a prior event's chain run mutated unrelated
// scratch fields — callers must not reuse a [*DebugContext] across
// events without calling Reset first.
func (dctx *DebugContext) Reset(cfg DebugConfig) {
	dctx.Config = cfg
	dctx.RawRequest = nil
	dctx.RawResponse = nil
	dctx.OverrideHTTPStatus = 0
	dctx.SkipCallback = false
	dctx.DisconnectAfter = false
}
