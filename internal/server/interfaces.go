package server

// Server is the lifecycle of the reference API server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then drains
	// connections and returns.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
