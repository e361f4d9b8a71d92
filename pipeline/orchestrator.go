// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"fmt"
	"math/rand/v2"

	"github.com/bassosimone/httpsim/callback"
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugchain"
	"github.com/bassosimone/httpsim/debugctx"
	"github.com/bassosimone/httpsim/errclassifier"
	"github.com/bassosimone/httpsim/slogger"
)

// Orchestrator wires a [debugchain.Chain] and a [callback.Manager]
// around a single [debugctx.DebugConfig], implementing the
// request-chain → callback → response-chain glue.
//
// An Orchestrator is not safe for concurrent use by multiple
// goroutines against the same event; the intended shape is one
// Orchestrator per consumer thread pulling events off the SPSC queue.
type Orchestrator struct {
	Chain     *debugchain.Chain
	Callbacks *callback.Manager
	Config    debugctx.DebugConfig

	// Probability gates whether the debug chain runs at all for a
	// given event, implementing a per-debug-point sampling rate
	// (0-100): it is called once per event and compared against
	// Config.Probability (stored by the caller as a percentage).
	// Defaults to a uniform [0,100) draw.
	Probability func() int

	// Logger receives one line per event that ends in a chain error,
	// classified through ErrClassifier, so a collaborator can correlate
	// pipeline failures across spans, and one line per event whose
	// callback reports failure. Defaults to a discard logger.
	Logger slogger.SLogger

	// ErrClassifier labels chain errors for Logger. Defaults to
	// errclassifier.DefaultErrClassifier (a no-op label).
	ErrClassifier errclassifier.ErrClassifier
}

// NewOrchestrator returns an [*Orchestrator] with a default
// probability source (a uniform draw in [0, 100)), a discard logger,
// and the no-op error classifier.
func NewOrchestrator(chain *debugchain.Chain, callbacks *callback.Manager, cfg debugctx.DebugConfig) *Orchestrator {
	return &Orchestrator{
		Chain:         chain,
		Callbacks:     callbacks,
		Config:        cfg,
		Probability:   func() int { return rand.IntN(100) },
		Logger:        slogger.DefaultSLogger(),
		ErrClassifier: errclassifier.DefaultErrClassifier,
	}
}

// Process runs one event through the pipeline: request-phase chain,
// callback, response-phase chain, status-override application, then
// returns the disposition the I/O collaborator should act on.
//
// A chain error during either phase aborts processing and is returned
// as err; every other outcome returns a nil error — the orchestrator
// surfaces chain errors, but treats "chain not executed" and "callback
// returned false" as non-fatal. A callback that returns false is
// reported through Logger only; the return values do not carry it.
func (o *Orchestrator) Process(ctx *clientctx.ClientContext) (Disposition, error) {
	cfg := o.effectiveConfig()
	dctx := debugctx.NewDebugContext(cfg)

	reqResult := o.Chain.ProcessRequest(ctx, cfg, dctx)
	if reqResult.IsErr() {
		err := reqResult.AsError()
		o.logSpanDone(ctx, err)
		return CloseWithoutSending, err
	}
	if dctx.DisconnectAfter {
		return CloseWithoutSending, nil
	}

	if !dctx.SkipCallback {
		if !o.Callbacks.ExecuteCallback(ctx) && o.Logger != nil {
			o.Logger.Info(fmt.Sprintf(
				"pipeline: conn_id=%d, server_port=%d, callback failed",
				ctx.ConnectionID, ctx.ServerPort,
			))
		}
	}

	respResult := o.Chain.ProcessResponse(ctx, cfg, dctx)
	if respResult.IsErr() {
		err := respResult.AsError()
		o.logSpanDone(ctx, err)
		return CloseWithoutSending, err
	}

	if dctx.OverrideHTTPStatus != 0 {
		ctx.Response.StatusCode = int(dctx.OverrideHTTPStatus)
		if reason, ok := reasonFor(int(dctx.OverrideHTTPStatus)); ok {
			ctx.Response.Reason = reason
		}
	}

	if dctx.DisconnectAfter {
		return SendAndClose, nil
	}
	return SendAndKeep, nil
}

// logSpanDone emits one line classifying a chain error for this
// event's span, pairing an [errclassifier.ErrClassifier] with an
// [slogger.SLogger] rather than logging raw error strings.
func (o *Orchestrator) logSpanDone(ctx *clientctx.ClientContext, err error) {
	if o.Logger == nil || ctx == nil {
		return
	}
	classifier := o.ErrClassifier
	if classifier == nil {
		classifier = errclassifier.DefaultErrClassifier
	}
	o.Logger.Info(fmt.Sprintf(
		"pipeline: conn_id=%d, server_port=%d, error=%v, class=%q",
		ctx.ConnectionID, ctx.ServerPort, err, classifier.Classify(err),
	))
}

// effectiveConfig applies the probability gate: when the coin flip
// misses, the event is processed as if the chain were disabled for it
// (the config's Enabled gate is cleared for this call only, leaving
// o.Config untouched for subsequent events).
func (o *Orchestrator) effectiveConfig() debugctx.DebugConfig {
	cfg := o.Config
	if !cfg.Enabled {
		return cfg
	}
	if o.Probability == nil {
		return cfg
	}
	if o.Probability() >= cfg.Probability {
		cfg.Enabled = false
	}
	return cfg
}
