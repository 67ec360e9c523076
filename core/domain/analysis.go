// ABOUTME: Analyzer result models for the trust scoring pipeline
// ABOUTME: Defines per-analyzer results, the outcome tag, and the final overall result

package domain

// Outcome tags how an analyzer result was produced. It is internal state for
// tests and logging and is never serialized: a skipped and a computed result
// share the same external shape.
type Outcome string

const (
	// OutcomeComputed means the analyzer ran its external checks to completion.
	OutcomeComputed Outcome = "computed"

	// OutcomeSkipped means the analyzer's capability was not configured and a
	// neutral default was returned.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means the external call failed and a neutral fallback was
	// returned.
	OutcomeFailed Outcome = "failed"
)

// FramingResult is the query framing analyzer's output.
type FramingResult struct {
	Score    int     `json:"score"`
	IsBiased bool    `json:"isBiased"`
	Details  string  `json:"details"`
	Outcome  Outcome `json:"-"`
}

// NetworkResult is the network correlation analyzer's output. SharedIPDomains
// lists every domain that resolved to an IP shared with another cited source.
type NetworkResult struct {
	Score           int      `json:"score"`
	SharedIPDomains []string `json:"sharedIpDomains"`
	Details         string   `json:"details"`
	Outcome         Outcome  `json:"-"`
}

// AuthorityResult is the simplified authority (E-E-A-T) analyzer's output.
type AuthorityResult struct {
	Score               int     `json:"score"`
	LowAuthorityDomains int     `json:"lowAuthorityDomains"`
	Details             string  `json:"details"`
	Outcome             Outcome `json:"-"`
}

// Metrics groups the three analyzer results in the response payload.
type Metrics struct {
	QueryFraming    FramingResult   `json:"queryFraming"`
	NetworkAnalysis NetworkResult   `json:"networkAnalysis"`
	SimplifiedEEAT  AuthorityResult `json:"simplifiedEEAT"`
}

// OverallResult is the final scoring payload for one analysis request.
// It is constructed once per request and not mutated afterwards.
type OverallResult struct {
	OverallScore      int     `json:"overallScore"`
	Summary           string  `json:"summary"`
	AlternativeAnswer string  `json:"alternativeAnswer"`
	Metrics           Metrics `json:"metrics"`
}
