package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solacehq/solace/internal/registry"
)

func TestRankResources_ComparatorChain(t *testing.T) {
	resources := []registry.Resource{
		{ID: "paid-generic", Cost: registry.CostPaid},
		{ID: "free-cultural", Cost: registry.CostFree, Cultural: registry.CulturalCompetency{BlackSpecific: true}},
		{ID: "free-generic", Cost: registry.CostFree},
		{ID: "emergency-line", Cost: registry.CostFree, Emergency: true},
		{ID: "nhs-cultural", Cost: registry.CostNHSFunded, Cultural: registry.CulturalCompetency{LGBTQSpecific: true}},
	}

	RankResources(resources)

	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}

	assert.Equal(t, []string{
		"emergency-line",
		"free-cultural",
		"nhs-cultural",
		"free-generic",
		"paid-generic",
	}, ids)
}

func TestRankResources_TiesKeepCatalogOrder(t *testing.T) {
	resources := []registry.Resource{
		{ID: "a", Cost: registry.CostFree},
		{ID: "b", Cost: registry.CostFree},
		{ID: "c", Cost: registry.CostNHSFunded},
	}

	RankResources(resources)

	assert.Equal(t, "a", resources[0].ID)
	assert.Equal(t, "b", resources[1].ID)
	assert.Equal(t, "c", resources[2].ID)
}

func TestRankResources_Deterministic(t *testing.T) {
	build := func() []registry.Resource {
		return []registry.Resource{
			{ID: "x", Cost: registry.CostPaid, Emergency: true},
			{ID: "y", Cost: registry.CostFree},
			{ID: "z", Cost: registry.CostFree, Cultural: registry.CulturalCompetency{BlackSpecific: true}},
		}
	}

	first := RankResources(build())
	second := RankResources(build())
	assert.Equal(t, first, second)
}

func TestRankKnowledge_ValidationThenRecency(t *testing.T) {
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	entries := []registry.KnowledgeEntry{
		{ID: "unvalidated-recent", LastUpdated: recent},
		{ID: "validated-old", LastUpdated: old, CommunityValidated: true},
		{ID: "validated-recent", LastUpdated: recent, CommunityValidated: true},
	}

	RankKnowledge(entries)

	assert.Equal(t, "validated-recent", entries[0].ID)
	assert.Equal(t, "validated-old", entries[1].ID)
	assert.Equal(t, "unvalidated-recent", entries[2].ID)
}
