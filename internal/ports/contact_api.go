package ports

// ContactAPI defines the interface for a transport exposing the resolver
type ContactAPI interface {
	// Start starts serving requests
	Start() error

	// Stop shuts the transport down gracefully
	Stop() error
}
