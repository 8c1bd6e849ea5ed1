package trust

import (
	"context"
	"math"
	"time"

	"github.com/solacehq/solace/internal/registry"
)

// Knowledge score weights. Fixed, and they sum to 1.0.
const (
	weightSourceValidity = 0.35
	weightRecency        = 0.25
	weightStatus         = 0.25
	weightCommunity      = 0.15
)

// Resource score weights. Fixed, and they sum to 1.0.
const (
	weightResourceCost      = 0.35
	weightResourceCultural  = 0.25
	weightResourceContact   = 0.25
	weightResourceEmergency = 0.15
)

// KnowledgeScore carries a knowledge entry's score plus the source
// verification tally the response bundle reports.
type KnowledgeScore struct {
	Score           float64
	SourcesVerified int
	SourcesTotal    int
}

// ScoreKnowledge computes the trust score for a knowledge entry, probing
// its source URLs through the verdict cache. Entries without sources get
// a zero source-validity contribution, not an error.
func (e *Engine) ScoreKnowledge(ctx context.Context, entry registry.KnowledgeEntry) KnowledgeScore {
	var sourceRatio float64
	verified := 0
	verdicts := e.ValidateMultipleURLs(ctx, entry.Sources)
	if len(verdicts) > 0 {
		for _, ok := range verdicts {
			if ok {
				verified++
			}
		}
		sourceRatio = float64(verified) / float64(len(verdicts))
	}

	score := clamp01(sourceRatio)*weightSourceValidity +
		clamp01(e.recencyFactor(entry.LastUpdated))*weightRecency +
		clamp01(statusWeight(entry.Verification))*weightStatus +
		clamp01(communityBonus(entry.CommunityValidated))*weightCommunity

	return KnowledgeScore{
		Score:           clamp01(score),
		SourcesVerified: verified,
		SourcesTotal:    len(verdicts),
	}
}

// CalculateKnowledgeTrustScore returns just the score in [0,1].
func (e *Engine) CalculateKnowledgeTrustScore(ctx context.Context, entry registry.KnowledgeEntry) float64 {
	return e.ScoreKnowledge(ctx, entry).Score
}

// CalculateResourceTrustScore scores a resource without any network work.
func (e *Engine) CalculateResourceTrustScore(res registry.Resource) float64 {
	cultural := float64(res.Cultural.MatchCount()) / 3.0

	var emergency float64
	if res.Emergency {
		emergency = 1.0
	}

	var contact float64
	if res.HasVerifiableContact() {
		contact = 1.0
	}

	score := clamp01(costFavorability(res.Cost))*weightResourceCost +
		clamp01(cultural)*weightResourceCultural +
		clamp01(contact)*weightResourceContact +
		clamp01(emergency)*weightResourceEmergency

	return clamp01(score)
}

// recencyFactor is 1.0 inside the freshness window, decaying linearly to
// 0 at the staleness horizon.
func (e *Engine) recencyFactor(lastUpdated time.Time) float64 {
	age := time.Since(lastUpdated)
	if age <= e.cfg.FreshnessWindow {
		return 1.0
	}
	if age >= e.cfg.StalenessHorizon {
		return 0.0
	}
	span := e.cfg.StalenessHorizon - e.cfg.FreshnessWindow
	return 1.0 - float64(age-e.cfg.FreshnessWindow)/float64(span)
}

func statusWeight(status registry.VerificationStatus) float64 {
	switch status {
	case registry.StatusVerified:
		return 1.0
	case registry.StatusPending:
		return 0.5
	default:
		return 0.0
	}
}

func communityBonus(validated bool) float64 {
	if validated {
		return 1.0
	}
	return 0.0
}

func costFavorability(cost registry.CostTier) float64 {
	switch cost {
	case registry.CostFree, registry.CostNHSFunded:
		return 1.0
	case registry.CostSlidingScale:
		return 0.6
	case registry.CostPaid:
		return 0.3
	default:
		return 0.0
	}
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// Interpretation is the human-readable band for a score. Thresholds are
// stable: >=0.8 high, >=0.6 medium, >=0.4 low, otherwise very_low.
type Interpretation struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// Interpret maps a score onto its band. Pure lookup.
func Interpret(score float64) Interpretation {
	switch {
	case score >= 0.8:
		return Interpretation{
			Level:       "high",
			Description: "Well-sourced, recently reviewed and community validated.",
		}
	case score >= 0.6:
		return Interpretation{
			Level:       "medium",
			Description: "Generally reliable; some sources or reviews may be dated.",
		}
	case score >= 0.4:
		return Interpretation{
			Level:       "low",
			Description: "Limited verification; treat as a starting point and confirm with a clinician.",
		}
	default:
		return Interpretation{
			Level:       "very_low",
			Description: "Unverified or outdated; shown only when nothing stronger is available.",
		}
	}
}
