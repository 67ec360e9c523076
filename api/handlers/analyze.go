// ABOUTME: Analyze handler scores the trustworthiness of cited sources for a query
// ABOUTME: Exposes the single POST /analyze operation over the trust scoring service

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"sourcetrust-api/core/domain"
)

// TrustAnalyzer scores a user query and its cited sources. The analysis never
// fails: capability outages degrade individual sub-scores instead.
type TrustAnalyzer interface {
	AnalyzeSources(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult
}

// AnalyzeHandler handles trust analysis requests
type AnalyzeHandler struct {
	trust TrustAnalyzer
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(trust TrustAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		trust: trust,
	}
}

// RegisterRoutes registers analysis routes
func (h *AnalyzeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeSourceTrust",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Analyze source trustworthiness",
		Description: "Scores the trustworthiness of the cited sources and the framing of the user query",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeSourceTrust)
}

// AnalyzeInput defines the input for trust analysis
type AnalyzeInput struct {
	Body struct {
		UserQuery    string          `json:"userQuery" doc:"Free-text user query whose framing is analyzed"`
		CitedSources []domain.Source `json:"citedSources,omitempty" doc:"Cited source URLs to score"`
	}
}

// AnalyzeOutput defines the output for trust analysis
type AnalyzeOutput struct {
	Body domain.OverallResult
}

// AnalyzeSourceTrust handles the POST /analyze endpoint. It always responds
// with 200 and best-effort scores; analyzer failures are absorbed by the core.
func (h *AnalyzeHandler) AnalyzeSourceTrust(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	result := h.trust.AnalyzeSources(ctx, input.Body.UserQuery, input.Body.CitedSources)

	output := &AnalyzeOutput{}
	output.Body = result
	return output, nil
}
