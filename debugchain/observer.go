// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// Observer is notified after a [Chain] finishes a request or response
// phase, independent of the handlers that ran. It exists for
// collaborators such as metrics or tracing that want to attach to the
// chain without becoming a [Handler] themselves (no priority, no
// ability to stop the chain). Observers never affect the returned
// [Disposition].
type Observer interface {
	OnRequestProcessed(ctx *clientctx.ClientContext, dctx *debugctx.DebugContext, result Disposition)
	OnResponseProcessed(ctx *clientctx.ClientContext, dctx *debugctx.DebugContext, result Disposition)
}

// AddObserver registers o to be notified after every subsequent
// ProcessRequest/ProcessResponse call. Observers are never deduplicated
// by identity; removing one requires RemoveObserver with the exact
// value, or ClearObservers.
func (c *Chain) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// RemoveObserver removes the first observer equal to o, if any.
func (c *Chain) RemoveObserver(o Observer) {
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// ClearObservers removes every registered observer.
func (c *Chain) ClearObservers() {
	c.observers = nil
}

func (c *Chain) notifyRequest(ctx *clientctx.ClientContext, dctx *debugctx.DebugContext, result Disposition) {
	for _, o := range c.observers {
		o.OnRequestProcessed(ctx, dctx, result)
	}
}

func (c *Chain) notifyResponse(ctx *clientctx.ClientContext, dctx *debugctx.DebugContext, result Disposition) {
	for _, o := range c.observers {
		o.OnResponseProcessed(ctx, dctx, result)
	}
}
