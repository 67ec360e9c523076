// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, DNS resolution, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with per-call timeouts
// - logger/logrus: Structured JSON logger backed by logrus
// - resolver/netdns: DNS resolution backed by the system resolver
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include unit tests against local test servers
//
// # HTTP Client
//
// The HTTP client makes one attempt per call; the analyzers absorb failures:
//
//	client := standard.NewStandardHTTPClient(15 * time.Second)
//	resp, err := client.Get(ctx, "https://serpapi.com/search?q=site:example.com")
//	if err != nil {
//	    // handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(os.Stdout, "info")
//	logger.Info("analysis completed", map[string]interface{}{
//	    "overall_score": 80,
//	})
package infrastructure
