// ABOUTME: Trust scoring service orchestrates the three analyzers for one request
// ABOUTME: Fans out framing, network, and authority analysis and synthesizes the result

package trust

import (
	"context"
	"sync"
	"time"

	"sourcetrust-api/core/domain"
	"sourcetrust-api/core/interfaces"
	"sourcetrust-api/pkg/config"
)

// alternativeAnswerPlaceholder is returned verbatim until alternative answer
// generation is implemented.
const alternativeAnswerPlaceholder = "Alternative answer generation is not implemented in this version."

// Service scores the trustworthiness of cited sources and query framing.
// All external capabilities are injected; an absent credential degrades the
// corresponding analyzer to a neutral default instead of failing the request.
type Service struct {
	deps interfaces.Dependencies
	cfg  config.AnalysisConfig
}

// NewService creates a new trust scoring service instance
func NewService(deps interfaces.Dependencies, cfg config.AnalysisConfig) *Service {
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// AnalyzeSources runs the three analyzers over the request and synthesizes
// one overall score. The analyzers have no data dependency on one another and
// run concurrently; each absorbs its own failures, so this method always
// returns a complete, well-formed result.
func (s *Service) AnalyzeSources(ctx context.Context, userQuery string, sources []domain.Source) domain.OverallResult {
	var (
		framing   domain.FramingResult
		network   domain.NetworkResult
		authority domain.AuthorityResult
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		framing = s.AnalyzeQueryFraming(ctx, userQuery)
	}()

	go func() {
		defer wg.Done()
		network = s.AnalyzeNetworkCorrelation(ctx, sources)
	}()

	go func() {
		defer wg.Done()
		authority = s.AnalyzeAuthority(ctx, sources)
	}()

	wg.Wait()

	overallScore, summary := Synthesize(framing, network, authority)

	s.deps.Logger.Info("analysis completed", map[string]interface{}{
		"overall_score":   overallScore,
		"framing_score":   framing.Score,
		"network_score":   network.Score,
		"authority_score": authority.Score,
	})

	return domain.OverallResult{
		OverallScore:      overallScore,
		Summary:           summary,
		AlternativeAnswer: alternativeAnswerPlaceholder,
		Metrics: domain.Metrics{
			QueryFraming:    framing,
			NetworkAnalysis: network,
			SimplifiedEEAT:  authority,
		},
	}
}

// callTimeout bounds a single external call so an unresponsive capability
// cannot stall the whole request.
func (s *Service) callTimeout() time.Duration {
	return time.Duration(s.cfg.CallTimeout) * time.Second
}
