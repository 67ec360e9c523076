// ABOUTME: Source domain model and hostname extraction for cited sources
// ABOUTME: Provides deduplicated domain derivation used by the network and authority analyzers

package domain

import (
	"net/url"
	"strings"
)

// Source is a single cited source submitted for analysis.
type Source struct {
	URL string `json:"url"`
}

// UniqueDomains returns the set of unique hostnames parsed from the sources,
// lower-cased and with any port stripped, in first-seen order.
//
// Deduplication is by hostname, not full URL: two pages on the same domain
// count as one signal. Malformed URLs and URLs without a host are skipped.
func UniqueDomains(sources []Source) []string {
	seen := make(map[string]struct{}, len(sources))
	domains := make([]string, 0, len(sources))

	for _, src := range sources {
		u, err := url.Parse(src.URL)
		if err != nil {
			continue
		}

		host := strings.ToLower(u.Hostname())
		if host == "" {
			continue
		}

		if _, ok := seen[host]; ok {
			continue
		}
		seen[host] = struct{}{}
		domains = append(domains, host)
	}

	return domains
}
