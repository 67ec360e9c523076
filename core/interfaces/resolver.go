package interfaces

import "context"

// Resolver defines the interface for resolving a hostname to an IP address.
// The network correlation analyzer only needs a single representative address
// per host; implementations return the first address from the lookup.
type Resolver interface {
	// LookupIPAddr resolves the hostname and returns one IP address as a
	// string, or an error if the host does not resolve.
	LookupIPAddr(ctx context.Context, host string) (string, error)
}
