package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"sourcetrust-api/core/domain"
)

// mockTrustAnalyzer is a mock implementation of the trust analysis service
type mockTrustAnalyzer struct {
	analyzeFunc func(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult
}

func (m *mockTrustAnalyzer) AnalyzeSources(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userQuery, sources)
	}
	return domain.OverallResult{}
}

func TestNewAnalyzeHandler(t *testing.T) {
	handler := NewAnalyzeHandler(&mockTrustAnalyzer{})

	if handler == nil {
		t.Fatal("NewAnalyzeHandler returned nil")
	}
	if handler.trust == nil {
		t.Error("AnalyzeHandler.trust is nil")
	}
}

func TestAnalyzeHandler_RegisterRoutes(t *testing.T) {
	handler := NewAnalyzeHandler(&mockTrustAnalyzer{})
	_, api := humatest.New(t)

	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/analyze"] == nil {
		t.Fatal("POST /analyze endpoint not registered")
	}
	if openapi.Paths["/analyze"].Post == nil {
		t.Error("POST method not registered for /analyze")
	}
}

func TestAnalyzeHandler_PassesRequestToService(t *testing.T) {
	mock := &mockTrustAnalyzer{
		analyzeFunc: func(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult {
			if userQuery != "is X trustworthy" {
				t.Errorf("userQuery = %q", userQuery)
			}
			if len(sources) != 2 {
				t.Errorf("sources = %d, want 2", len(sources))
			}
			return domain.OverallResult{
				OverallScore:      80,
				Summary:           "Medium risk detected. Please review sources with caution.",
				AlternativeAnswer: "Alternative answer generation is not implemented in this version.",
			}
		},
	}
	handler := NewAnalyzeHandler(mock)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/analyze", map[string]interface{}{
		"userQuery": "is X trustworthy",
		"citedSources": []map[string]string{
			{"url": "https://a.example.com/story"},
			{"url": "https://b.example.com/story"},
		},
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body struct {
		OverallScore int    `json:"overallScore"`
		Summary      string `json:"summary"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.OverallScore != 80 {
		t.Errorf("overallScore = %d, want 80", body.OverallScore)
	}
	if body.Summary != "Medium risk detected. Please review sources with caution." {
		t.Errorf("summary = %q", body.Summary)
	}
}

func TestAnalyzeHandler_EmptySourcesStillSucceeds(t *testing.T) {
	mock := &mockTrustAnalyzer{
		analyzeFunc: func(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult {
			return domain.OverallResult{
				OverallScore: 100,
				Summary:      "Low risk detected. The sources appear generally trustworthy.",
			}
		},
	}
	handler := NewAnalyzeHandler(mock)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/analyze", map[string]interface{}{
		"userQuery": "query with no sources",
	})

	if resp.Code != 200 {
		t.Errorf("status = %d, want 200 (endpoint never fails the request)", resp.Code)
	}
}

func TestAnalyzeHandler_ResponseIncludesMetrics(t *testing.T) {
	mock := &mockTrustAnalyzer{
		analyzeFunc: func(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult {
			return domain.OverallResult{
				OverallScore: 50,
				Summary:      "High risk of manipulation detected. 2 domains share an IP address with another cited source.",
				Metrics: domain.Metrics{
					QueryFraming:    domain.FramingResult{Score: 100, Details: "Analysis skipped: API Key not configured."},
					NetworkAnalysis: domain.NetworkResult{Score: 0, SharedIPDomains: []string{"a.example.com", "b.example.com"}},
					SimplifiedEEAT:  domain.AuthorityResult{Score: 100, Details: "Analysis skipped: API Key not configured."},
				},
			}
		},
	}
	handler := NewAnalyzeHandler(mock)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/analyze", map[string]interface{}{
		"userQuery": "query",
		"citedSources": []map[string]string{
			{"url": "https://a.example.com/"},
		},
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body struct {
		Metrics struct {
			QueryFraming struct {
				Score int `json:"score"`
			} `json:"queryFraming"`
			NetworkAnalysis struct {
				SharedIPDomains []string `json:"sharedIpDomains"`
			} `json:"networkAnalysis"`
			SimplifiedEEAT struct {
				Score int `json:"score"`
			} `json:"simplifiedEEAT"`
		} `json:"metrics"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Metrics.QueryFraming.Score != 100 {
		t.Errorf("queryFraming score = %d", body.Metrics.QueryFraming.Score)
	}
	if len(body.Metrics.NetworkAnalysis.SharedIPDomains) != 2 {
		t.Errorf("sharedIpDomains = %v", body.Metrics.NetworkAnalysis.SharedIPDomains)
	}
	if body.Metrics.SimplifiedEEAT.Score != 100 {
		t.Errorf("simplifiedEEAT score = %d", body.Metrics.SimplifiedEEAT.Score)
	}
}
