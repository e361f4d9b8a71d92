// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"testing"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
	"github.com/stretchr/testify/assert"
)

func TestDisconnectHandlerNoop(t *testing.T) {
	h := NewDisconnectHandler()
	cfg := debugctx.NewDebugConfig()
	dctx := debugctx.NewDebugContext(cfg)
	ctx := clientctx.New()

	disposition := h.OnRequest(ctx, cfg, dctx)

	assert.True(t, disposition.IsContinue())
	assert.False(t, dctx.DisconnectAfter)
}

func TestDisconnectHandlerForced(t *testing.T) {
	h := NewDisconnectHandler()
	cfg := debugctx.NewDebugConfig()
	cfg.ForceDisconnect = true
	dctx := debugctx.NewDebugContext(cfg)
	ctx := clientctx.New()

	disposition := h.OnResponse(ctx, cfg, dctx)

	assert.True(t, disposition.IsStop())
	assert.True(t, dctx.DisconnectAfter)
}
