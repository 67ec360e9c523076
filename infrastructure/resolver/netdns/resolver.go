// ABOUTME: DNS resolver implementation backed by the system resolver
// ABOUTME: Returns one representative IP address per hostname for cluster analysis

package netdns

import (
	"context"
	"fmt"
	"net"
)

// Resolver implements the core Resolver interface using net.Resolver
type Resolver struct {
	resolver *net.Resolver
}

// NewResolver creates a resolver backed by the system DNS configuration
func NewResolver() *Resolver {
	return &Resolver{resolver: net.DefaultResolver}
}

// LookupIPAddr resolves the hostname and returns the first address.
// Address ordering follows the system resolver; the network analyzer only
// needs a stable representative address per host within one request.
func (r *Resolver) LookupIPAddr(ctx context.Context, host string) (string, error) {
	addrs, err := r.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("no addresses found for %s", host)
	}
	return addrs[0].IP.String(), nil
}
