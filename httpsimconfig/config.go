// SPDX-License-Identifier: GPL-3.0-or-later

// Package httpsimconfig mirrors the simulator's configuration surface
// — listens, certificates, debug points, callbacks, logging, http2 —
// as plain structs with yaml tags. Reading the file from disk is a
// collaborator's job; this package only shapes already-parsed data
// and maps it onto [debugctx.DebugConfig]/[callback.Manager].
package httpsimconfig

// Listen describes one listening socket. Only `server_port` is
// consumed by the core; the rest exists for the I/O collaborator.
type Listen struct {
	ServerPort uint16 `yaml:"server_port"`
	Address    string `yaml:"address"`
}

// Certificate describes one TLS certificate/key pair, consumed
// entirely by the I/O collaborator — the core never touches it.
type Certificate struct {
	ServerPort uint16 `yaml:"server_port"`
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
}

// DebugPointAction is the closed set of actions a debug point can
// apply.
type DebugPointAction string

const (
	ActionDelay      DebugPointAction = "delay"
	ActionDisconnect DebugPointAction = "disconnect"
	ActionLog        DebugPointAction = "log"
	ActionError      DebugPointAction = "error"
)

// DebugPoint is one entry of debug.debug_points[].
//
// Probability is a pointer so the zero value left by an absent YAML
// key ("inherit the default") is distinguishable from an explicit
// `probability: 0` ("never run this point") — both decode to 0 as a
// plain int, which would silently treat the two as the same thing.
type DebugPoint struct {
	ServerPort  uint16           `yaml:"server_port"`
	PointName   string           `yaml:"point_name"`
	Action      DebugPointAction `yaml:"action"`
	DelayMS     uint32           `yaml:"delay_ms"`
	ErrorCode   int32            `yaml:"error_code"`
	Probability *int             `yaml:"probability"`
}

// Debug is the debug.* section.
type Debug struct {
	Enabled     bool         `yaml:"enabled"`
	DebugPoints []DebugPoint `yaml:"debug_points"`
}

// CallbackEntry is one entry of callbacks.callbacks[].
type CallbackEntry struct {
	ServerPort uint16 `yaml:"server_port"`
	ScriptPath string `yaml:"script_path"`
}

// Callbacks is the callbacks.* section.
type Callbacks struct {
	CallbacksDir string          `yaml:"callbacks_dir"`
	Callbacks    []CallbackEntry `yaml:"callbacks"`
}

// Logging is the logging.* section, consumed by the I/O collaborator
// that constructs the [slogger.SLogger] the core is handed.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// HTTP2 is the http2.* section, consumed entirely by the I/O
// collaborator — wire framing is out of scope for the core.
type HTTP2 struct {
	MaxConcurrentStreams uint32 `yaml:"max_concurrent_streams"`
}

// Config is the top-level structured configuration.
type Config struct {
	Listens      []Listen      `yaml:"listens"`
	Certificates []Certificate `yaml:"certificates"`
	Debug        Debug         `yaml:"debug"`
	Callbacks    Callbacks     `yaml:"callbacks"`
	Logging      Logging       `yaml:"logging"`
	HTTP2        HTTP2         `yaml:"http2"`
}

// DefaultCallbacksDir is used when callbacks.callbacks_dir is empty.
const DefaultCallbacksDir = "callbacks"
