// ABOUTME: Authority analyzer estimates each cited domain's web presence
// ABOUTME: Buckets site-restricted result counts into tiers and averages per-domain points

package trust

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"sourcetrust-api/core/domain"
	coreerrors "sourcetrust-api/core/errors"
)

const (
	authorityDetailsSkipped = "Analysis skipped: API Key not configured."

	// Result-count thresholds for the three authority tiers.
	lowAuthorityThreshold    = 1000
	mediumAuthorityThreshold = 100000

	authorityPointsLow    = 20
	authorityPointsMedium = 70
	authorityPointsHigh   = 100

	// authorityPointsUnknown is the neutral fallback for a failed lookup:
	// unknown presence is treated as moderate trust, not zero or perfect.
	authorityPointsUnknown = 50
)

// searchResponse is the search capability's response shape.
type searchResponse struct {
	SearchInformation struct {
		TotalResults int64 `json:"total_results"`
	} `json:"search_information"`
}

// AnalyzeAuthority estimates each unique cited domain's authority from its
// approximate indexed-result count and averages the per-domain points. A
// failed lookup contributes the neutral fallback; the analyzer itself never
// fails.
func (s *Service) AnalyzeAuthority(ctx context.Context, sources []domain.Source) domain.AuthorityResult {
	if len(sources) == 0 {
		return domain.AuthorityResult{
			Score:   100,
			Details: detailsNoSources,
			Outcome: domain.OutcomeComputed,
		}
	}

	if s.cfg.Search.APIKey == "" {
		return domain.AuthorityResult{
			Score:   100,
			Details: authorityDetailsSkipped,
			Outcome: domain.OutcomeSkipped,
		}
	}

	domains := domain.UniqueDomains(sources)
	if len(domains) == 0 {
		s.deps.Logger.Warn("no resolvable hostnames among cited sources", map[string]interface{}{
			"sources": len(sources),
		})
		return domain.AuthorityResult{
			Score:   100,
			Details: detailsNoSources,
			Outcome: domain.OutcomeComputed,
		}
	}

	var mu sync.Mutex
	totalPoints := 0
	lowAuthority := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, d := range domains {
		d := d
		g.Go(func() error {
			points, isLow := s.scoreDomainAuthority(gctx, d)

			mu.Lock()
			totalPoints += points
			if isLow {
				lowAuthority++
			}
			mu.Unlock()
			return nil
		})
	}

	// Per-domain failures are converted to fallback points, never returned.
	_ = g.Wait()

	score := int(math.Round(float64(totalPoints) / float64(len(domains))))

	return domain.AuthorityResult{
		Score:               score,
		LowAuthorityDomains: lowAuthority,
		Details:             fmt.Sprintf("%d domains fall in the low-authority tier.", lowAuthority),
		Outcome:             domain.OutcomeComputed,
	}
}

// scoreDomainAuthority buckets one domain's result count into tier points.
// The second return value reports membership in the low-authority tier.
func (s *Service) scoreDomainAuthority(ctx context.Context, host string) (int, bool) {
	count, err := s.lookupResultCount(ctx, host)
	if err != nil {
		s.deps.Logger.Warn("authority lookup failed, using neutral fallback", map[string]interface{}{
			"domain": host,
			"error":  err.Error(),
		})
		return authorityPointsUnknown, false
	}

	switch {
	case count < lowAuthorityThreshold:
		return authorityPointsLow, true
	case count < mediumAuthorityThreshold:
		return authorityPointsMedium, false
	default:
		return authorityPointsHigh, false
	}
}

// lookupResultCount queries the search capability with a site-restricted
// query and reads back the approximate total-result count. A single attempt
// is made; any failure is final for that domain.
func (s *Service) lookupResultCount(ctx context.Context, host string) (int64, error) {
	params := url.Values{}
	params.Set("q", "site:"+host)
	params.Set("api_key", s.cfg.Search.APIKey)

	ctx, cancel := context.WithTimeout(ctx, s.callTimeout())
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.Search.Endpoint+"?"+params.Encode())
	if err != nil {
		return 0, coreerrors.WrapError(err, "search request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return 0, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        "search",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return 0, coreerrors.WrapError(err, "failed to read search response")
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, coreerrors.WrapError(err, "failed to parse search response")
	}

	return result.SearchInformation.TotalResults, nil
}
