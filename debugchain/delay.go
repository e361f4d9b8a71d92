// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"time"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// PriorityDelay is [DelayHandler]'s fixed priority.
const PriorityDelay int32 = 100

// NewDelayHandler returns the built-in handler that sleeps for
// cfg.DelayMS milliseconds before letting the chain continue, when
// DelayMS is greater than zero. It runs identically in both phases.
func NewDelayHandler() *DelayHandler {
	return &DelayHandler{
		BaseHandler: NewBaseHandler("DelayHandler", PriorityDelay),
		sleep:       time.Sleep,
	}
}

// DelayHandler is the only built-in that suspends execution; every
// other chain operation is wait-free or bounded by the callback's own
// cost.
type DelayHandler struct {
	BaseHandler

	// sleep is overridable in tests so delay assertions don't need to
	// wait on a real clock.
	sleep func(time.Duration)
}

var (
	_ Handler         = (*DelayHandler)(nil)
	_ hasRequestHook  = (*DelayHandler)(nil)
	_ hasResponseHook = (*DelayHandler)(nil)
)

// OnRequest implements [hasRequestHook].
func (h *DelayHandler) OnRequest(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, _ *debugctx.DebugContext) Disposition {
	return h.delay(cfg)
}

// OnResponse implements [hasResponseHook].
func (h *DelayHandler) OnResponse(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, _ *debugctx.DebugContext) Disposition {
	return h.delay(cfg)
}

func (h *DelayHandler) delay(cfg debugctx.DebugConfig) Disposition {
	if cfg.DelayMS > 0 {
		h.sleep(time.Duration(cfg.DelayMS) * time.Millisecond)
	}
	return Continue
}
