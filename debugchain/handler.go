// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// Handler is a polymorphic chain participant with a name, a priority,
// and request/response hooks.
//
// Creation returns ownership of a [Handler] to the caller; registering
// it with a [Chain] via [Chain.RegisterHandler] transfers ownership to
// the chain, which will invoke [Handler.Close] on unregister or on its
// own [Chain.Close].
//
// At least one of [hasRequestHook]/[hasResponseHook] must be satisfied
// by a concrete handler for registration to succeed. The four
// built-ins below all implement both.
type Handler interface {
	Name() string
	Priority() int32
	Close() error
}

// hasRequestHook is implemented by handlers that act during the
// request phase. A [Handler] without it is silently skipped by
// [Chain.ProcessRequest].
type hasRequestHook interface {
	OnRequest(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition
}

// hasResponseHook is implemented by handlers that act during the
// response phase. A [Handler] without it is silently skipped by
// [Chain.ProcessResponse].
type hasResponseHook interface {
	OnResponse(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition
}

// BaseHandler supplies the bookkeeping every built-in handler needs
// (name, priority, a no-op Close) so each one only has to implement
// the hook(s) it actually uses.
type BaseHandler struct {
	name     string
	priority int32
}

// NewBaseHandler returns a [BaseHandler] with the given name and priority.
func NewBaseHandler(name string, priority int32) BaseHandler {
	return BaseHandler{name: name, priority: priority}
}

// Name implements [Handler].
func (h BaseHandler) Name() string { return h.name }

// Priority implements [Handler].
func (h BaseHandler) Priority() int32 { return h.priority }

// Close implements [Handler]. Built-ins own no resources; handlers
// wrapping external resources (a file, a connection pool entry) should
// override this.
func (h BaseHandler) Close() error { return nil }
