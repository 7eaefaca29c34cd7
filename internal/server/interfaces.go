package server

// Server is the lifecycle contract of the transport server. RunServer blocks
// until a stop signal arrives; Shutdown stops serving and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
