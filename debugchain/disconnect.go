// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// PriorityDisconnect is [DisconnectHandler]'s fixed priority.
const PriorityDisconnect int32 = 200

// NewDisconnectHandler returns the built-in handler that forces a
// connection drop when cfg.ForceDisconnect is set.
func NewDisconnectHandler() *DisconnectHandler {
	return &DisconnectHandler{BaseHandler: NewBaseHandler("DisconnectHandler", PriorityDisconnect)}
}

// DisconnectHandler sets dctx.DisconnectAfter and stops the chain when
// triggered, so no handler registered at a higher priority number
// (LogHandler, ErrorCodeHandler) observes this event.
type DisconnectHandler struct {
	BaseHandler
}

var (
	_ Handler         = (*DisconnectHandler)(nil)
	_ hasRequestHook  = (*DisconnectHandler)(nil)
	_ hasResponseHook = (*DisconnectHandler)(nil)
)

// OnRequest implements [hasRequestHook].
func (h *DisconnectHandler) OnRequest(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	return h.disconnect(cfg, dctx)
}

// OnResponse implements [hasResponseHook].
func (h *DisconnectHandler) OnResponse(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	return h.disconnect(cfg, dctx)
}

func (h *DisconnectHandler) disconnect(cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	if cfg.ForceDisconnect {
		dctx.DisconnectAfter = true
		return Stop
	}
	return Continue
}
