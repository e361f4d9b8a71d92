// SPDX-License-Identifier: GPL-3.0-or-later

package callback

import (
	"sync"
	"testing"

	"github.com/bassosimone/httpsim/clientctx"
	"github.com/stretchr/testify/assert"
)

func TestGetStrategyFallsBackToDefault(t *testing.T) {
	m := NewManager()
	assert.Equal(t, "default", m.GetStrategy(8443).Name())
}

func TestRegisterStrategyOverridesDefault(t *testing.T) {
	m := NewManager()
	m.RegisterStrategy(8443, EchoStrategy{})
	assert.Equal(t, "echo", m.GetStrategy(8443).Name())
	assert.Equal(t, "default", m.GetStrategy(9000).Name())
}

func TestUnloadScriptFallsBackToDefault(t *testing.T) {
	m := NewManager()
	m.RegisterStrategy(8443, EchoStrategy{})
	m.UnloadScript(8443)
	assert.Equal(t, "default", m.GetStrategy(8443).Name())
}

func TestLoadScriptAlwaysInstallsDefaultStrategy(t *testing.T) {
	m := NewManager()
	m.RegisterStrategy(8443, EchoStrategy{})

	// The documented stub semantics: load_script ignores script_path
	// and always installs the default strategy.
	m.LoadScript("/some/unrelated/script.lua", 8443)

	assert.Equal(t, "default", m.GetStrategy(8443).Name())
}

func TestCallbacksDirRoundTrip(t *testing.T) {
	m := NewManager()
	assert.Equal(t, "", m.GetCallbacksDir())
	m.SetCallbacksDir("/etc/httpsim/callbacks")
	assert.Equal(t, "/etc/httpsim/callbacks", m.GetCallbacksDir())
}

func TestExecuteCallbackDispatchesByServerPort(t *testing.T) {
	m := NewManager()
	m.RegisterStrategy(8443, NewStatusOnlyStrategy(503, "Service Unavailable"))

	ctx := clientctx.New()
	ctx.ServerPort = 8443

	ok := m.ExecuteCallback(ctx)

	assert.True(t, ok)
	assert.Equal(t, 503, ctx.Response.StatusCode)
}

func TestManagerConcurrentRegisterAndExecute(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		port := uint16(8000 + i%4)
		go func(port uint16) {
			defer wg.Done()
			m.RegisterStrategy(port, EchoStrategy{})
		}(port)
		go func(port uint16) {
			defer wg.Done()
			ctx := clientctx.New()
			ctx.ServerPort = port
			m.ExecuteCallback(ctx)
		}(port)
	}

	wg.Wait()
}
