// SPDX-License-Identifier: GPL-3.0-or-later

package callback

import (
	"sync"

	"github.com/bassosimone/httpsim/clientctx"
)

// Manager maps server ports to [Strategy] instances, with
// [DefaultStrategy] as the fallback for any unmapped port.
//
// Registration is expected to happen during startup, but
// [Manager.ExecuteCallback] and [Manager.GetStrategy] are safe to call
// concurrently with each other and with registration, so a
// multi-threaded orchestrator can dispatch callbacks freely.
type Manager struct {
	mu           sync.RWMutex
	callbacksDir string
	byPort       map[uint16]Strategy
	defaultStrat Strategy
}

// NewManager returns a [*Manager] with [DefaultStrategy] as its
// fallback and no per-port mappings.
func NewManager() *Manager {
	return &Manager{
		byPort:       make(map[uint16]Strategy),
		defaultStrat: DefaultStrategy{},
	}
}

// SetCallbacksDir records path. The manager never reads it itself;
// it is exposed for collaborators that load scripted strategies from
// disk.
func (m *Manager) SetCallbacksDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacksDir = path
}

// GetCallbacksDir returns the directory last recorded by
// SetCallbacksDir, or "" if none was set.
func (m *Manager) GetCallbacksDir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.callbacksDir
}

// RegisterStrategy maps port to strategy, replacing any existing
// mapping. Takes ownership of strategy in the sense that the manager
// is now the sole caller of its Execute method for that port.
func (m *Manager) RegisterStrategy(port uint16, strategy Strategy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byPort[port] = strategy
}

// LoadScript registers the default strategy for port regardless of
// path. This mirrors a stub in the system this package is modeled on:
// scripted callback strategies are not implemented there, and this
// preserves that stub behavior rather than inventing new semantics
// (see DESIGN.md).
func (m *Manager) LoadScript(path string, port uint16) {
	_ = path
	m.RegisterStrategy(port, DefaultStrategy{})
}

// UnloadScript removes the mapping for port. Future dispatches for
// that port fall back to the default strategy.
func (m *Manager) UnloadScript(port uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byPort, port)
}

// GetStrategy returns the strategy registered for port, or the
// default strategy if none is registered.
func (m *Manager) GetStrategy(port uint16) Strategy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.byPort[port]; ok {
		return s
	}
	return m.defaultStrat
}

// ExecuteCallback looks up the strategy for ctx.ServerPort and invokes
// it, returning its boolean success.
func (m *Manager) ExecuteCallback(ctx *clientctx.ClientContext) bool {
	strategy := m.GetStrategy(ctx.ServerPort)
	return strategy.Execute(ctx)
}
