package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/cache"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

// stubGenerator returns a fixed message, or an error when failing is set.
type stubGenerator struct {
	message string
	failing bool
	calls   int
}

func (s *stubGenerator) Generate(ctx context.Context, in ReplyInput) (string, error) {
	s.calls++
	if s.failing {
		return "", errors.New("service unavailable")
	}
	return s.message, nil
}

// newTestOrchestrator builds the pipeline with a near-zero turn deadline,
// so source probes fail fast instead of reaching the network.
func newTestOrchestrator(t *testing.T, gen ReplyGenerator) *Orchestrator {
	t.Helper()

	reg, err := registry.New()
	require.NoError(t, err)

	c := cache.NewMemoryClient(100)
	t.Cleanup(func() { c.Close() })
	eng := trust.NewEngine(observability.Nop(), c, trust.Config{})

	return NewOrchestrator(observability.Nop(), reg, eng, gen, Config{
		MaxResources: 5,
		MaxKnowledge: 3,
		TurnDeadline: time.Millisecond,
	})
}

func TestRespond_CrisisTurn(t *testing.T) {
	gen := &stubGenerator{message: "You're not alone in this."}
	orch := newTestOrchestrator(t, gen)

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I just got diagnosed and I'm terrified",
		Location: "london",
	})
	require.NoError(t, err)

	assert.Equal(t, registry.StageCrisis, resp.JourneyStage)
	assert.Equal(t, registry.UrgencyHigh, resp.Urgency)
	assert.True(t, resp.FollowUpRequired, "crisis turns always require follow-up")
	assert.False(t, resp.RequestFeedback, "no feedback prompt mid-crisis")
	assert.True(t, resp.SpecificInformation)
	assert.Equal(t, "You're not alone in this.", resp.Message)
	assert.NotEmpty(t, resp.ResponseID)
	assert.False(t, resp.Degraded)

	require.NotEmpty(t, resp.Resources)
	assert.True(t, resp.Resources[0].Emergency, "emergency resources rank first in a crisis")

	ids := make([]string, 0, len(resp.Resources))
	for _, r := range resp.Resources {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "dean-street")
}

func TestRespond_GrowthTurnWithKnowledge(t *testing.T) {
	gen := &stubGenerator{message: "Here's what you need to know about PrEP."}
	orch := newTestOrchestrator(t, gen)

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I want to learn about PrEP and how to get it on the NHS",
		Location: "manchester",
	})
	require.NoError(t, err)

	assert.Equal(t, registry.StageGrowth, resp.JourneyStage)
	assert.Equal(t, registry.UrgencyLow, resp.Urgency)
	assert.False(t, resp.FollowUpRequired)
	assert.True(t, resp.RequestFeedback)
	assert.True(t, resp.SpecificInformation)

	ids := make([]string, 0, len(resp.Knowledge))
	for _, k := range resp.Knowledge {
		ids = append(ids, k.ID)
	}
	assert.Contains(t, ids, "k-prep-nhs")
}

func TestRespond_UnmatchedMessageIsNotSpecific(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "hello there",
		Location: "london",
	})
	require.NoError(t, err)

	assert.Equal(t, registry.StageGrowth, resp.JourneyStage)
	assert.False(t, resp.SpecificInformation, "the growth default is a guess, not a match")
	assert.True(t, resp.FollowUpRequired)
	require.NotEmpty(t, resp.Resources, "the generic fallback still serves resources")
}

func TestRespond_TrustFieldsPopulated(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I want to learn about testing options",
		Location: "london",
	})
	require.NoError(t, err)

	assert.Greater(t, resp.TrustScore, 0.0)
	assert.LessOrEqual(t, resp.TrustScore, 1.0)
	assert.NotEmpty(t, resp.TrustLevel)
	assert.NotEmpty(t, resp.TrustDescription)

	for _, r := range resp.Resources {
		assert.GreaterOrEqual(t, r.TrustScore, 0.0)
		assert.LessOrEqual(t, r.TrustScore, 1.0)
	}
	for _, k := range resp.Knowledge {
		assert.Equal(t, len(k.Sources), k.SourcesTotal)
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})

	_, err := orch.Respond(context.Background(), TurnRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestRespond_UnknownLocationStillAnswers(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I just found out and I'm panicking",
		Location: "atlantis",
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Resources, "unknown locations fall back to nationwide services")
	for _, r := range resp.Resources {
		assert.Contains(t, r.Locations, registry.LocationNationwide)
	}
}

func TestRespond_DegradedWhenGeneratorFails(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{failing: true})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I want to learn about PrEP",
		Location: "london",
	})

	assert.ErrorIs(t, err, ErrReplyDegraded)
	require.NotNil(t, resp, "degraded turns still carry the full bundle")
	assert.True(t, resp.Degraded)
	assert.Equal(t, FallbackMessage, resp.Message)
	assert.NotEmpty(t, resp.Resources)
}

func TestRespond_NilGeneratorIsDegraded(t *testing.T) {
	orch := newTestOrchestrator(t, nil)

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I want to learn about testing",
		Location: "london",
	})

	assert.ErrorIs(t, err, ErrReplyDegraded)
	require.NotNil(t, resp)
	assert.Equal(t, FallbackMessage, resp.Message)
}

func TestRespond_Deterministic(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})
	req := TurnRequest{
		Text:     "Are there support groups with others like me?",
		Location: "manchester",
	}

	first, err := orch.Respond(context.Background(), req)
	require.NoError(t, err)
	second, err := orch.Respond(context.Background(), req)
	require.NoError(t, err)

	firstIDs := make([]string, 0, len(first.Resources))
	for _, r := range first.Resources {
		firstIDs = append(firstIDs, r.ID)
	}
	secondIDs := make([]string, 0, len(second.Resources))
	for _, r := range second.Resources {
		secondIDs = append(secondIDs, r.ID)
	}

	assert.Equal(t, firstIDs, secondIDs)
	assert.Equal(t, first.JourneyStage, second.JourneyStage)
	assert.Equal(t, first.TrustScore, second.TrustScore)
	assert.NotEqual(t, first.ResponseID, second.ResponseID)
}

func TestRespond_NextStagePathway(t *testing.T) {
	orch := newTestOrchestrator(t, &stubGenerator{message: "ok"})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I want to learn about staying healthy",
		Location: "london",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.NextStagePathway, "first turn always suggests a pathway")

	resp, err = orch.Respond(context.Background(), TurnRequest{
		Text:           "I want to learn about staying healthy",
		Location:       "london",
		PreviousStages: []registry.JourneyStage{registry.StageGrowth},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.NextStagePathway, "no hint when the stage has not changed")
}

func TestRespond_BundleRespectsLimits(t *testing.T) {
	reg, err := registry.New()
	require.NoError(t, err)
	c := cache.NewMemoryClient(100)
	t.Cleanup(func() { c.Close() })
	eng := trust.NewEngine(observability.Nop(), c, trust.Config{})

	orch := NewOrchestrator(observability.Nop(), reg, eng, &stubGenerator{message: "ok"}, Config{
		MaxResources: 2,
		MaxKnowledge: 1,
		TurnDeadline: time.Millisecond,
	})

	resp, err := orch.Respond(context.Background(), TurnRequest{
		Text:     "I just got diagnosed and I'm terrified",
		Location: "london",
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(resp.Resources), 2)
	assert.LessOrEqual(t, len(resp.Knowledge), 1)
}
