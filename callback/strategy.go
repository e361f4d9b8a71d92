// SPDX-License-Identifier: GPL-3.0-or-later

// Package callback implements the per-port response strategy registry
// that sits at the end of the debug pipeline: once the request phase
// of the debug chain has run, the callback manager produces the
// response body the client eventually sees.
package callback

import (
	"fmt"

	"github.com/bassosimone/httpsim/clientctx"
)

// Strategy produces a response for a [clientctx.ClientContext]. Execute
// mutates ctx.Response and reports whether it succeeded; a false
// result is not fatal — the orchestrator still sends whatever response
// is present and logs the failure through its logger; the result is not
// part of what the orchestrator returns to its I/O collaborator.
type Strategy interface {
	Name() string
	Execute(ctx *clientctx.ClientContext) bool
}

const defaultResponseBody = `{"status":"ok"}`

// DefaultStrategy is the fallback strategy used for any port with no
// registered mapping: a fixed 200 response carrying a small JSON body.
type DefaultStrategy struct{}

// Name returns "default".
func (DefaultStrategy) Name() string { return "default" }

// Execute always succeeds, producing the canonical
// {"status":"ok"} body.
func (DefaultStrategy) Execute(ctx *clientctx.ClientContext) bool {
	ctx.Response.StatusCode = 200
	ctx.Response.Reason = "OK"
	ctx.Response.Body = []byte(defaultResponseBody)
	ctx.Response.Headers = []clientctx.Header{
		clientctx.NewHeader("Content-Type", "application/json"),
		clientctx.NewHeader("Content-Length", fmt.Sprintf("%d", len(defaultResponseBody))),
	}
	return true
}

// EchoStrategy reflects the request body back to the client with a
// 200 status. Unlike [DefaultStrategy], it has no counterpart in the
// original simulator's callback directory, which bundles only a single
// fixed-body sample strategy; this one is an addition exercising the
// same [Strategy] surface.
type EchoStrategy struct{}

// Name returns "echo".
func (EchoStrategy) Name() string { return "echo" }

// Execute copies ctx.Request.Body into ctx.Response.Body unchanged.
func (EchoStrategy) Execute(ctx *clientctx.ClientContext) bool {
	body := append([]byte(nil), ctx.Request.Body...)
	ctx.Response.StatusCode = 200
	ctx.Response.Reason = "OK"
	ctx.Response.Body = body
	ctx.Response.Headers = []clientctx.Header{
		clientctx.NewHeader("Content-Type", "application/octet-stream"),
		clientctx.NewHeader("Content-Length", fmt.Sprintf("%d", len(body))),
	}
	return true
}

// StatusOnlyStrategy returns a fixed status code with an empty body,
// no headers beyond Content-Length: 0. Like [EchoStrategy], it is an
// addition with no counterpart in the original simulator's callback
// directory.
type StatusOnlyStrategy struct {
	Code   int
	Reason string
}

// NewStatusOnlyStrategy returns a [StatusOnlyStrategy] fixed at code
// with reason as the status line's reason phrase.
func NewStatusOnlyStrategy(code int, reason string) StatusOnlyStrategy {
	return StatusOnlyStrategy{Code: code, Reason: reason}
}

// Name returns "status-only".
func (StatusOnlyStrategy) Name() string { return "status-only" }

// Execute sets the fixed status code and an empty body.
func (s StatusOnlyStrategy) Execute(ctx *clientctx.ClientContext) bool {
	ctx.Response.StatusCode = s.Code
	ctx.Response.Reason = s.Reason
	ctx.Response.Body = nil
	ctx.Response.Headers = []clientctx.Header{
		clientctx.NewHeader("Content-Length", "0"),
	}
	return true
}
