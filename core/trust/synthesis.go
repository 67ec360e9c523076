// ABOUTME: Score synthesis combines the three analyzer results with fixed weights
// ABOUTME: Produces the overall 0-100 score and the tiered narrative summary

package trust

import (
	"math"

	"sourcetrust-api/core/domain"
)

// Fixed synthesis weights. Network and authority dominate; query framing is a
// minor signal.
const (
	weightQueryFraming = 0.10
	weightNetwork      = 0.50
	weightAuthority    = 0.40
)

// Summary tier boundaries, inclusive lower bounds.
const (
	mediumRiskFloor = 60
	lowRiskFloor    = 85
)

const (
	summaryHighRiskPrefix = "High risk of manipulation detected. "
	summaryMediumRisk     = "Medium risk detected. Please review sources with caution."
	summaryLowRisk        = "Low risk detected. The sources appear generally trustworthy."
)

// Synthesize combines the three analyzer results into one overall score and
// a narrative summary. Pure function of its inputs.
func Synthesize(framing domain.FramingResult, network domain.NetworkResult, authority domain.AuthorityResult) (int, string) {
	weighted := weightQueryFraming*float64(framing.Score) +
		weightNetwork*float64(network.Score) +
		weightAuthority*float64(authority.Score)
	overall := int(math.Round(weighted))

	switch {
	case overall < mediumRiskFloor:
		summary := summaryHighRiskPrefix
		if network.Score < mediumRiskFloor {
			summary += network.Details
		}
		if authority.Score < mediumRiskFloor {
			summary += " " + authority.Details
		}
		return overall, summary
	case overall < lowRiskFloor:
		return overall, summaryMediumRisk
	default:
		return overall, summaryLowRisk
	}
}
