package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solacehq/solace/internal/registry"
)

func TestBuildContext_FirstTime(t *testing.T) {
	cls := Classification{
		Stage:          registry.StageCrisis,
		Urgency:        registry.UrgencyHigh,
		EmotionalState: EmotionStressed,
		Formality:      FormalityCasual,
	}

	ctx := BuildContext(cls, "london", nil, nil)

	assert.True(t, ctx.FirstTime)
	assert.False(t, ctx.ReturningUser)
	assert.Equal(t, registry.StageCrisis, ctx.Stage)
	assert.Equal(t, ConnectionLow, ctx.CommunityConnection)
}

func TestBuildContext_MemoriesBiasRegisterAndAccess(t *testing.T) {
	cls := Classification{Stage: registry.StageGrowth, Formality: FormalityCasual}

	ctx := BuildContext(cls, "manchester", nil, []MemoryRecord{
		{Kind: "communication_style", Note: "prefers formal language"},
		{Kind: "support_need", Note: "wants face to face support"},
	})

	assert.Equal(t, FormalityFormal, ctx.Formality)
	assert.Equal(t, "in_person", ctx.AccessPreference)
}

func TestBuildContext_ConnectionLevel(t *testing.T) {
	cls := Classification{Stage: registry.StageCommunityHealing}
	ctx := BuildContext(cls, "london", nil, nil)
	assert.Equal(t, ConnectionHigh, ctx.CommunityConnection)

	cls = Classification{Stage: registry.StageGrowth}
	ctx = BuildContext(cls, "london", []registry.JourneyStage{registry.StageCommunityHealing}, nil)
	assert.Equal(t, ConnectionMedium, ctx.CommunityConnection)

	ctx = BuildContext(cls, "london", nil, []MemoryRecord{
		{Kind: "support_need", Note: "attends a peer group weekly"},
	})
	assert.Equal(t, ConnectionMedium, ctx.CommunityConnection)
}

func TestSuggestNextStage(t *testing.T) {
	assert.True(t, SuggestNextStage(registry.StageGrowth, nil), "first stage always gets a hint")
	assert.True(t, SuggestNextStage(registry.StageGrowth, []registry.JourneyStage{registry.StageCrisis}))
	assert.False(t, SuggestNextStage(registry.StageGrowth, []registry.JourneyStage{registry.StageCrisis, registry.StageGrowth}))
}

func TestNextStagePathway(t *testing.T) {
	for _, stage := range registry.StageOrder[:len(registry.StageOrder)-1] {
		assert.NotEmpty(t, NextStagePathway(stage), "no pathway text for %s", stage)
	}
	assert.Empty(t, NextStagePathway(registry.StageAdvocacy), "final stage has no pathway")
}
