// SPDX-License-Identifier: GPL-3.0-or-later

package httpsimconfig

import (
	"github.com/bassosimone/httpsim/callback"
	"github.com/bassosimone/httpsim/debugctx"
)

// BuildDebugConfigs maps cfg.Debug.DebugPoints onto a
// [debugctx.DebugConfig] per server port: action "delay" sets DelayMS,
// "disconnect" sets ForceDisconnect, "log" sets LogPacket, "error"
// sets HTTPStatus from ErrorCode. cfg.Debug.Enabled is the master gate
// applied to every resulting config. Multiple debug points for the
// same port are folded together; a later point's field wins on
// conflict within the same action, but distinct actions accumulate
// onto the same config.
func BuildDebugConfigs(cfg *Config) map[uint16]debugctx.DebugConfig {
	out := make(map[uint16]debugctx.DebugConfig)

	for _, point := range cfg.Debug.DebugPoints {
		dcfg, ok := out[point.ServerPort]
		if !ok {
			dcfg = debugctx.NewDebugConfig()
		}
		dcfg.Enabled = cfg.Debug.Enabled
		if point.Probability != nil {
			dcfg.Probability = *point.Probability
		}

		switch point.Action {
		case ActionDelay:
			dcfg.DelayMS = point.DelayMS
		case ActionDisconnect:
			dcfg.ForceDisconnect = true
		case ActionLog:
			dcfg.LogPacket = true
		case ActionError:
			dcfg.HTTPStatus = point.ErrorCode
		}

		out[point.ServerPort] = dcfg
	}

	return out
}

// ApplyCallbacks registers mgr's callbacks dir and per-port mappings
// from cfg.Callbacks: every entry is interpreted as "register a
// default strategy for this port" via [callback.Manager.LoadScript],
// matching its documented stub semantics.
func ApplyCallbacks(cfg *Config, mgr *callback.Manager) {
	dir := cfg.Callbacks.CallbacksDir
	if dir == "" {
		dir = DefaultCallbacksDir
	}
	mgr.SetCallbacksDir(dir)

	for _, entry := range cfg.Callbacks.Callbacks {
		mgr.LoadScript(entry.ScriptPath, entry.ServerPort)
	}
}
