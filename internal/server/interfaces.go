package server

// Server owns the learnly HTTP listener for the lifetime of the process.
type Server interface {
	// RunServer serves the API until SIGINT, SIGTERM or SIGQUIT arrives,
	// then drains in-flight requests within the configured shutdown timeout.
	RunServer()

	// Shutdown stops accepting connections and waits for active handlers.
	Shutdown()
}
