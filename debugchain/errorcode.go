// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
)

// PriorityErrorCode is [ErrorCodeHandler]'s fixed priority.
const PriorityErrorCode int32 = 400

// NewErrorCodeHandler returns the built-in handler that imposes
// cfg.HTTPStatus on the outgoing response via dctx.OverrideHTTPStatus.
func NewErrorCodeHandler() *ErrorCodeHandler {
	return &ErrorCodeHandler{BaseHandler: NewBaseHandler("ErrorCodeHandler", PriorityErrorCode)}
}

// ErrorCodeHandler's two phases are symmetric: each only asserts
// cfg.HTTPStatus if no earlier handler (request-phase or otherwise)
// already set a nonzero override — letting an override set by a
// different, higher-priority handler survive unchanged through both
// phases.
type ErrorCodeHandler struct {
	BaseHandler
}

var (
	_ Handler         = (*ErrorCodeHandler)(nil)
	_ hasRequestHook  = (*ErrorCodeHandler)(nil)
	_ hasResponseHook = (*ErrorCodeHandler)(nil)
)

// OnRequest implements [hasRequestHook].
func (h *ErrorCodeHandler) OnRequest(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	if dctx.OverrideHTTPStatus == 0 {
		dctx.OverrideHTTPStatus = cfg.HTTPStatus
	}
	return Continue
}

// OnResponse implements [hasResponseHook].
func (h *ErrorCodeHandler) OnResponse(_ *clientctx.ClientContext, cfg debugctx.DebugConfig, dctx *debugctx.DebugContext) Disposition {
	if dctx.OverrideHTTPStatus == 0 {
		dctx.OverrideHTTPStatus = cfg.HTTPStatus
	}
	return Continue
}
