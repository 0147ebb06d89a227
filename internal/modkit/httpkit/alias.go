// Package httpkit re-exports the platform http seam for modules
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "salesboard/internal/platform/net/http"
	"salesboard/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Response is the return style handler result
	Response = phttp.Response

	// Envelope is the JSON body every endpoint writes
	Envelope = phttp.Envelope

	// JSONOptions tunes request body binding
	JSONOptions = bind.JSONOptions
)

// Optional binds like the default but lets an empty body decode to the zero value
var Optional = bind.Optional

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
