// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"testing"
	"time"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugctx"
	"github.com/stretchr/testify/assert"
)

func TestDelayHandlerSleepsWhenPositive(t *testing.T) {
	h := NewDelayHandler()
	var slept time.Duration
	h.sleep = func(d time.Duration) { slept = d }

	cfg := debugctx.NewDebugConfig()
	cfg.DelayMS = 250
	dctx := debugctx.NewDebugContext(cfg)
	ctx := clientctx.New()

	disposition := h.OnRequest(ctx, cfg, dctx)

	assert.True(t, disposition.IsContinue())
	assert.Equal(t, 250*time.Millisecond, slept)
}

func TestDelayHandlerSkipsWhenZero(t *testing.T) {
	h := NewDelayHandler()
	called := false
	h.sleep = func(time.Duration) { called = true }

	cfg := debugctx.NewDebugConfig()
	dctx := debugctx.NewDebugContext(cfg)
	ctx := clientctx.New()

	h.OnResponse(ctx, cfg, dctx)

	assert.False(t, called)
}

func TestDelayHandlerIdentity(t *testing.T) {
	assert.Equal(t, "DelayHandler", NewDelayHandler().Name())
	assert.EqualValues(t, 100, NewDelayHandler().Priority())
}
