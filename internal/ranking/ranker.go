// Package ranking imposes the presentation order on filtered candidates.
// Both orderings are total, deterministic and stable: ties keep catalog
// order so repeated calls agree byte for byte.
package ranking

import (
	"sort"

	"github.com/solacehq/solace/internal/registry"
)

// RankResources orders resources in place by the fixed comparator chain:
// emergency first, then free/NHS-funded, then culturally specific, then
// stable catalog order.
func RankResources(resources []registry.Resource) []registry.Resource {
	sort.SliceStable(resources, func(i, j int) bool {
		a, b := resources[i], resources[j]

		if a.Emergency != b.Emergency {
			return a.Emergency
		}

		aAfford, bAfford := affordable(a.Cost), affordable(b.Cost)
		if aAfford != bAfford {
			return aAfford
		}

		aCultural, bCultural := a.Cultural.CulturallySpecific(), b.Cultural.CulturallySpecific()
		if aCultural != bCultural {
			return aCultural
		}

		return false
	})
	return resources
}

// RankKnowledge orders entries by community validation, then recency.
func RankKnowledge(entries []registry.KnowledgeEntry) []registry.KnowledgeEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.CommunityValidated != b.CommunityValidated {
			return a.CommunityValidated
		}

		return a.LastUpdated.After(b.LastUpdated)
	})
	return entries
}

func affordable(cost registry.CostTier) bool {
	return cost == registry.CostFree || cost == registry.CostNHSFunded
}
