// Package api provides the HTTP API layer for the Source Trust application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - middleware/: HTTP middleware for cross-cutting concerns
//
// The single operation is POST /analyze: it accepts a user query and a list
// of cited source URLs and responds with HTTP 200 and a composite trust
// score. The core absorbs analyzer failures, so the endpoint always returns
// best-effort scores rather than failing the whole request.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Per-IP rate limiting
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	analyzeHandler := handlers.NewAnalyzeHandler(trustService)
//	analyzeHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
package api
