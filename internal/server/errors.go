package server

import "errors"

// errNoHTTPHandler is returned when the API server has nothing to serve or
// nowhere to listen.
var errNoHTTPHandler = errors.New("api server needs an http handler and a listen address")
