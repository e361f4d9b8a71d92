// SPDX-License-Identifier: GPL-3.0-or-later

// Package debugchain implements the ordered, extensible pipeline of
// handlers that mutate or veto processing of each request and response.
package debugchain

import "fmt"

// Code is the numeric return-code vocabulary exposed by the chain.
//
// Preserve these values if a foreign-function layer is ever built on
// top of this package.
type Code int32

const (
	CodeSuccess       Code = 0
	CodeInvalidParam  Code = -1
	CodeNotFound      Code = -2
	CodeAlreadyExists Code = -3
	CodeContinueChain Code = 0
	CodeStopChain     Code = 1
)

// Error implements [error] so a [Code] can be returned wherever Go code
// expects an error, without losing the numeric value a C-style caller
// would check.
func (c Code) Error() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeInvalidParam:
		return "invalid param"
	case CodeNotFound:
		return "not found"
	case CodeAlreadyExists:
		return "already exists"
	case CodeStopChain:
		return "stop chain"
	default:
		return fmt.Sprintf("debugchain: code %d", int32(c))
	}
}

// Disposition is the three-valued result of invoking a handler hook or
// running a chain phase: continue to the next handler, stop the chain
// (a first-class, non-error outcome), or an error code.
type Disposition struct {
	code Code
}

// Continue lets the next handler in the chain run.
var Continue = Disposition{code: CodeContinueChain}

// Stop short-circuits the chain successfully: no error occurred, but
// no further handler in this phase should run.
var Stop = Disposition{code: CodeStopChain}

// NotExecuted is returned by [Chain.ProcessRequest]/[Chain.ProcessResponse]
// when the chain's [debugctx.DebugConfig.Enabled] gate is false: the
// chain did nothing for this event.
var NotExecuted = Disposition{code: CodeSuccess}

// Err wraps a negative [Code] as a [Disposition].
func Err(code Code) Disposition {
	return Disposition{code: code}
}

// IsContinue reports whether d lets the next handler run.
func (d Disposition) IsContinue() bool {
	return d.code == CodeContinueChain
}

// IsStop reports whether d is the first-class chain-stop outcome.
func (d Disposition) IsStop() bool {
	return d.code == CodeStopChain
}

// IsErr reports whether d carries an error code (a negative [Code]).
func (d Disposition) IsErr() bool {
	return d.code < 0
}

// Code returns the underlying numeric code.
func (d Disposition) Code() Code {
	return d.code
}

// AsError returns a non-nil error when d [Disposition.IsErr], else nil.
func (d Disposition) AsError() error {
	if d.IsErr() {
		return d.code
	}
	return nil
}
