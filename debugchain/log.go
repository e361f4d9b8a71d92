// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"fmt"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
	"github.com/bassosimone/httpsim/slogger"
)

// PriorityLog is [LogHandler]'s fixed priority.
const PriorityLog int32 = 300

// NewLogHandler returns the built-in handler that emits one line per
// phase when cfg.LogPacket is set. The logger is injected rather than
// pulled from a global, so the collaborator wiring the chain decides
// whether it is process-wide or per-thread.
func NewLogHandler(logger slogger.SLogger) *LogHandler {
	return &LogHandler{
		BaseHandler: NewBaseHandler("LogHandler", PriorityLog),
		Logger:      logger,
	}
}

// LogHandler emits a single structured line per phase, in the fixed
// format:
//
//	[Debug] <Request|Response>: conn_id=<u64>, client=<ip>:<port>, server_port=<port>
type LogHandler struct {
	BaseHandler

	// Logger is the sink lines are written to. Safe to reassign after
	// construction but not concurrently with a chain run.
	Logger slogger.SLogger
}

var (
	_ Handler         = (*LogHandler)(nil)
	_ hasRequestHook  = (*LogHandler)(nil)
	_ hasResponseHook = (*LogHandler)(nil)
)

// OnRequest implements [hasRequestHook].
func (h *LogHandler) OnRequest(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, _ *debugctx.DebugContext) Disposition {
	return h.log(ctx, cfg, "Request")
}

// OnResponse implements [hasResponseHook].
func (h *LogHandler) OnResponse(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, _ *debugctx.DebugContext) Disposition {
	return h.log(ctx, cfg, "Response")
}

func (h *LogHandler) log(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, direction string) Disposition {
	if cfg.LogPacket {
		h.Logger.Info(fmt.Sprintf(
			"[Debug] %s: conn_id=%d, client=%s:%d, server_port=%d",
			direction, ctx.ConnectionID, ctx.ClientIP, ctx.ClientPort, ctx.ServerPort,
		))
	}
	return Continue
}
