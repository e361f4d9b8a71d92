// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline implements the orchestrator that glues the debug
// chain and the callback manager into one per-event pipeline: request
// phase, callback, response phase, then a final instruction for the
// I/O collaborator.
package pipeline

// Disposition is the instruction the orchestrator hands back to its
// I/O collaborator once a [clientctx.ClientContext] has been fully
// processed.
type Disposition int

const (
	// SendAndKeep means: send the response, keep the connection open.
	SendAndKeep Disposition = iota
	// SendAndClose means: send the response, then close the connection.
	SendAndClose
	// CloseWithoutSending means: drop the event, close without writing
	// a response at all.
	CloseWithoutSending
)

// String renders d for logging.
func (d Disposition) String() string {
	switch d {
	case SendAndKeep:
		return "send-and-keep"
	case SendAndClose:
		return "send-and-close"
	case CloseWithoutSending:
		return "close-without-sending"
	default:
		return "unknown"
	}
}
