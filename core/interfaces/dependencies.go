// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for external capabilities required by the analyzers

package interfaces

// Dependencies holds all external dependencies required by the core analyzers
type Dependencies struct {
	// HTTPClient provides outbound HTTP request functionality for the
	// classification and search capabilities
	HTTPClient HTTPClient

	// Resolver provides DNS resolution for the network correlation analyzer
	Resolver Resolver

	// Logger provides structured logging
	Logger Logger
}
