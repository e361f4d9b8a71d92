// SPDX-License-Identifier: GPL-3.0-or-later

// Package clientctx defines the per-request value the debug pipeline
// reads from and writes to.
package clientctx

import "golang.org/x/net/http2/hpack"

// Header is an ordered name/value pair.
//
// Order is preserved and duplicates are allowed, reflecting wire
// fidelity: a real HTTP/2 header block (see [hpack.HeaderField]) is a
// sequence of such pairs, not a multimap.
type Header = hpack.HeaderField

// NewHeader builds a [Header] pair.
func NewHeader(name, value string) Header {
	return Header{Name: name, Value: value}
}

// Method is the HTTP request method, as the closed set the original
// simulator exposed (https_server_sim::callback::HttpMethod).
type Method int

const (
	MethodGET Method = iota
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodHEAD
	MethodOPTIONS
	MethodPATCH
	MethodUnknown
)

// String renders the method the way it appears on the wire.
func (m Method) String() string {
	switch m {
	case MethodGET:
		return "GET"
	case MethodPOST:
		return "POST"
	case MethodPUT:
		return "PUT"
	case MethodDELETE:
		return "DELETE"
	case MethodHEAD:
		return "HEAD"
	case MethodOPTIONS:
		return "OPTIONS"
	case MethodPATCH:
		return "PATCH"
	default:
		return "UNKNOWN"
	}
}

// Request is the HTTP request carried by a [ClientContext].
type Request struct {
	Method  Method
	Path    string
	Version string
	Headers []Header
	Body    []byte
}

// Response is the HTTP response carried by a [ClientContext].
type Response struct {
	StatusCode int
	Reason     string
	Headers    []Header
	Body       []byte
}

// ClientContext identifies a logical request: a connection id, the
// local server port the client hit (the callback-strategy lookup key),
// the client's address, and the one request/response pair flowing
// through the pipeline for this event.
//
// Created by the I/O layer (out of scope for this module) and handed
// to the pipeline by reference. Reset between reuses via [ClientContext.Reset].
type ClientContext struct {
	ConnectionID uint64
	ServerPort   uint16
	ClientIP     string
	ClientPort   uint16
	Request      Request
	Response     Response
}

// New returns a zero-valued [*ClientContext] with [Request.Version]
// defaulted to "HTTP/1.1" and [Response.StatusCode]/[Response.Reason]
// defaulted to 200/"OK", matching the original simulator's constructor
// defaults (https_server_sim::callback::HttpRequest/HttpResponse).
func New() *ClientContext {
	ctx := &ClientContext{}
	ctx.resetRequestResponse()
	return ctx
}

// Reset re-initializes ctx to the state [New] returns (zero identity
// fields, default request and response) so it can be reused for a
// subsequent event without allocating a new value.
func (ctx *ClientContext) Reset() {
	ctx.ConnectionID = 0
	ctx.ServerPort = 0
	ctx.ClientIP = ""
	ctx.ClientPort = 0
	ctx.resetRequestResponse()
}

func (ctx *ClientContext) resetRequestResponse() {
	ctx.Request = Request{Method: MethodGET, Version: "HTTP/1.1"}
	ctx.Response = Response{StatusCode: 200, Reason: "OK"}
}
