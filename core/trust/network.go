// ABOUTME: Network correlation analyzer flags cited domains sharing IP infrastructure
// ABOUTME: Resolves unique domains concurrently and scores down as shared-IP clusters grow

package trust

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"sourcetrust-api/core/domain"
)

const (
	detailsNoSources = "No sources to analyze."

	// sharedIPPenalty is deducted per domain found sharing an IP with another
	// cited source.
	sharedIPPenalty = 20

	// maxConcurrentLookups bounds per-domain fan-out for DNS and search calls.
	maxConcurrentLookups = 8
)

// AnalyzeNetworkCorrelation resolves each unique cited domain and flags every
// domain whose IP is shared with at least one other cited domain. A domain
// whose resolution fails is skipped, never penalized.
func (s *Service) AnalyzeNetworkCorrelation(ctx context.Context, sources []domain.Source) domain.NetworkResult {
	if len(sources) == 0 {
		return domain.NetworkResult{
			Score:           100,
			SharedIPDomains: []string{},
			Details:         detailsNoSources,
			Outcome:         domain.OutcomeComputed,
		}
	}

	domains := domain.UniqueDomains(sources)
	if len(domains) < len(sources) {
		s.deps.Logger.Debug("sources deduplicated to unique domains", map[string]interface{}{
			"sources": len(sources),
			"domains": len(domains),
		})
	}

	resolved := s.resolveDomains(ctx, domains)

	// IP -> domains cluster map, built in first-seen domain order so the
	// flagged set is deterministic.
	clusters := make(map[string][]string, len(resolved))
	for _, d := range domains {
		ip, ok := resolved[d]
		if !ok {
			continue
		}
		clusters[ip] = append(clusters[ip], d)
	}

	shared := make([]string, 0)
	for _, d := range domains {
		ip, ok := resolved[d]
		if !ok {
			continue
		}
		if len(clusters[ip]) >= 2 {
			shared = append(shared, d)
		}
	}

	score := 100 - sharedIPPenalty*len(shared)
	if score < 0 {
		score = 0
	}

	return domain.NetworkResult{
		Score:           score,
		SharedIPDomains: shared,
		Details:         fmt.Sprintf("%d domains share an IP address with another cited source.", len(shared)),
		Outcome:         domain.OutcomeComputed,
	}
}

// resolveDomains looks up one IP per domain with bounded concurrency.
// Failed lookups are logged and dropped from the returned map.
func (s *Service) resolveDomains(ctx context.Context, domains []string) map[string]string {
	var mu sync.Mutex
	resolved := make(map[string]string, len(domains))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, d := range domains {
		d := d
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(gctx, s.callTimeout())
			defer cancel()

			ip, err := s.deps.Resolver.LookupIPAddr(lookupCtx, d)
			if err != nil {
				s.deps.Logger.Debug("DNS resolution failed, skipping domain", map[string]interface{}{
					"domain": d,
					"error":  err.Error(),
				})
				return nil
			}

			mu.Lock()
			resolved[d] = ip
			mu.Unlock()
			return nil
		})
	}

	// Lookups never return errors; failures are absorbed per domain.
	_ = g.Wait()

	return resolved
}
