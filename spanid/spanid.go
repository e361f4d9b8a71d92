// SPDX-License-Identifier: GPL-3.0-or-later

// Package spanid generates time-ordered identifiers for pipeline runs.
package spanid

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// New returns a UUIDv7 representing a span.
//
// A span is a single pipeline run: the request phase, the callback, and
// the response phase for one [clientctx.ClientContext]. Attach the span
// ID to the logger used by LogHandler so every log line emitted during
// that run can be correlated.
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func New() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
