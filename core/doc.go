// Package core contains the business logic for the Source Trust API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Source, analyzer results, OverallResult)
// - trust: The scoring pipeline (framing, network, authority analyzers and synthesis)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external capabilities (HTTP, DNS, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external capabilities are injected via interfaces
// - Capability credentials arrive through an explicit configuration object,
//   never ambient environment reads, so both configured and degraded modes
//   are deterministic in tests
// - Analyzer failures are absorbed at the analyzer boundary; the pipeline
//   always produces a complete, well-formed result
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Resolver:   myResolver,   // implements interfaces.Resolver
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := trust.NewService(deps, cfg.Analysis)
//	result := service.AnalyzeSources(ctx, "is X trustworthy", sources)
package core
