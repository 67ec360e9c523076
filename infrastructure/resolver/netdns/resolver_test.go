package netdns

import (
	"context"
	"testing"
	"time"
)

func TestNewResolver(t *testing.T) {
	r := NewResolver()

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
	if r.resolver == nil {
		t.Error("resolver should default to the system resolver")
	}
}

func TestLookupIPAddr_Localhost(t *testing.T) {
	r := NewResolver()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ip, err := r.LookupIPAddr(ctx, "localhost")
	if err != nil {
		t.Fatalf("LookupIPAddr returned error: %v", err)
	}
	if ip == "" {
		t.Error("LookupIPAddr returned empty address")
	}
}

func TestLookupIPAddr_InvalidHost(t *testing.T) {
	r := NewResolver()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.LookupIPAddr(ctx, "definitely-not-a-real-host.invalid")
	if err == nil {
		t.Error("LookupIPAddr should return error for an unresolvable host")
	}
}
