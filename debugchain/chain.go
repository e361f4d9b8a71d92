// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"sort"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// Chain orders registered [Handler] instances by priority and invokes
// them in turn for the request and response phases.
//
// Chain is NOT internally synchronized. Registration/deregistration
// and execution must not overlap; the intended pattern is: all
// handlers registered during startup, execution-only during steady
// state.
type Chain struct {
	handlers  []Handler
	byName    map[string]int
	sorted    bool
	observers []Observer
}

// NewChain returns an empty [*Chain].
func NewChain() *Chain {
	return &Chain{byName: make(map[string]int)}
}

// RegisterHandler validates h and takes ownership of it.
//
// Fails with [CodeInvalidParam] if h is nil, h.Name() is empty, or h
// implements neither [hasRequestHook] nor [hasResponseHook]. Fails
// with [CodeAlreadyExists] if a handler with the same name is already
// registered; ownership remains with the caller in that case, so the
// caller may call h.Close() itself without double-closing anything.
func (c *Chain) RegisterHandler(h Handler) Disposition {
	if h == nil || h.Name() == "" {
		return Err(CodeInvalidParam)
	}
	_, hasReq := h.(hasRequestHook)
	_, hasResp := h.(hasResponseHook)
	if !hasReq && !hasResp {
		return Err(CodeInvalidParam)
	}
	if _, exists := c.byName[h.Name()]; exists {
		return Err(CodeAlreadyExists)
	}

	c.byName[h.Name()] = len(c.handlers)
	c.handlers = append(c.handlers, h)
	c.sorted = false
	return Disposition{code: CodeSuccess}
}

// UnregisterHandler locates the handler by name, invokes its Close,
// and removes it. Returns [CodeNotFound] if no such handler is registered.
func (c *Chain) UnregisterHandler(name string) Disposition {
	idx, ok := c.byName[name]
	if !ok {
		return Err(CodeNotFound)
	}

	h := c.handlers[idx]
	c.handlers = append(c.handlers[:idx], c.handlers[idx+1:]...)
	delete(c.byName, name)
	for n, i := range c.byName {
		if i > idx {
			c.byName[n] = i - 1
		}
	}
	h.Close()
	return Disposition{code: CodeSuccess}
}

// HasHandler reports whether a handler with the given name is registered.
func (c *Chain) HasHandler(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// ProcessRequest runs the request phase of the chain, then notifies
// any registered [Observer]s with the result.
func (c *Chain) ProcessRequest(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	result := c.process(ctx, cfg, dctx, func(h Handler) (Disposition, bool) {
		hook, ok := h.(hasRequestHook)
		if !ok {
			return Continue, false
		}
		return hook.OnRequest(ctx, cfg, dctx), true
	})
	c.notifyRequest(ctx, dctx, result)
	return result
}

// ProcessResponse runs the response phase of the chain, then notifies
// any registered [Observer]s with the result.
func (c *Chain) ProcessResponse(ctx *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	result := c.process(ctx, cfg, dctx, func(h Handler) (Disposition, bool) {
		hook, ok := h.(hasResponseHook)
		if !ok {
			return Continue, false
		}
		return hook.OnResponse(ctx, cfg, dctx), true
	})
	c.notifyResponse(ctx, dctx, result)
	return result
}

// process implements the shared algorithm behind ProcessRequest and
// ProcessResponse: validate, check the enabled gate, sort, invoke.
func (c *Chain) process(
	ctx *clientctx.ClientContext,
	cfg debugctx.DebugConfig,
	dctx *debugctx.DebugContext,
	invoke func(Handler) (Disposition, bool),
) Disposition {
	if ctx == nil || dctx == nil {
		return Err(CodeInvalidParam)
	}
	if !cfg.Enabled {
		return NotExecuted
	}

	c.ensureSorted()

	for _, h := range c.handlers {
		disposition, hasHook := invoke(h)
		if !hasHook {
			continue
		}
		if !disposition.IsContinue() {
			return disposition
		}
	}
	return Continue
}

func (c *Chain) ensureSorted() {
	if c.sorted {
		return
	}
	sort.SliceStable(c.handlers, func(i, j int) bool {
		a, b := c.handlers[i], c.handlers[j]
		if a.Priority() != b.Priority() {
			return a.Priority() < b.Priority()
		}
		return a.Name() < b.Name()
	})
	c.rebuildIndex()
	c.sorted = true
}

func (c *Chain) rebuildIndex() {
	for i, h := range c.handlers {
		c.byName[h.Name()] = i
	}
}

// Close invokes every remaining handler's Close, in no particular
// order, and empties the chain.
func (c *Chain) Close() error {
	for _, h := range c.handlers {
		h.Close()
	}
	c.handlers = nil
	c.byName = make(map[string]int)
	c.sorted = true
	return nil
}
