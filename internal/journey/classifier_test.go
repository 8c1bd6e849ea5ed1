package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solacehq/solace/internal/registry"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		message       string
		expectedStage registry.JourneyStage
		expectedUrg   registry.UrgencyLevel
		stageMatched  bool
	}{
		// Crisis
		{"I just got diagnosed and I'm terrified", registry.StageCrisis, registry.UrgencyHigh, true},
		{"I tested positive and I don't know what to do", registry.StageCrisis, registry.UrgencyHigh, true},
		{"I think I was exposed last night", registry.StageCrisis, registry.UrgencyHigh, true},

		// Stabilization
		{"Starting treatment next week, worried about side effects", registry.StageStabilization, registry.UrgencyMedium, true},
		{"My viral load results came back", registry.StageStabilization, registry.UrgencyMedium, true},

		// Growth
		{"I want to learn about PrEP and how to get it on the NHS", registry.StageGrowth, registry.UrgencyLow, true},
		{"Looking for information about staying healthy", registry.StageGrowth, registry.UrgencyLow, true},

		// Community healing
		{"Are there support groups with others like me?", registry.StageCommunityHealing, registry.UrgencyLow, true},

		// Advocacy
		{"I want to volunteer and help others fight stigma", registry.StageAdvocacy, registry.UrgencyLow, true},

		// No indicators: growth default, unmatched
		{"hello there", registry.StageGrowth, registry.UrgencyLow, false},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			cls := classifier.Classify(tc.message)
			assert.Equal(t, tc.expectedStage, cls.Stage, "stage mismatch for: %s", tc.message)
			assert.Equal(t, tc.expectedUrg, cls.Urgency, "urgency mismatch for: %s", tc.message)
			assert.Equal(t, tc.stageMatched, cls.StageMatched)
		})
	}
}

func TestClassifier_CrisisWinsCollisions(t *testing.T) {
	classifier := NewClassifier()

	// Messages matching several stage indicator sets must resolve to the
	// safest stage, regardless of where its indicators sit in the text.
	tests := []string{
		"I want to learn about treatment but I just got diagnosed",
		"My support group can't help, I'm falling apart",
		"I volunteer at a charity but today I'm panicking about my result",
	}

	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			cls := classifier.Classify(msg)
			assert.Equal(t, registry.StageCrisis, cls.Stage)
		})
	}
}

func TestClassifier_UrgencyEscalation(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		message  string
		expected registry.UrgencyLevel
	}{
		{"I need PEP right now", registry.UrgencyEmergency},
		{"This is urgent, I was exposed tonight", registry.UrgencyEmergency},
		{"Should I go to a&e?", registry.UrgencyEmergency},
		{"I want to learn about testing", registry.UrgencyLow},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			cls := classifier.Classify(tc.message)
			assert.Equal(t, tc.expected, cls.Urgency)
		})
	}
}

func TestClassifier_EmotionAndFormality(t *testing.T) {
	classifier := NewClassifier()

	cls := classifier.Classify("I'm so scared and worried about this")
	assert.Equal(t, EmotionStressed, cls.EmotionalState)

	cls = classifier.Classify("It's all too much, I'm overwhelmed")
	assert.Equal(t, EmotionOverwhelmed, cls.EmotionalState)

	cls = classifier.Classify("Great news, my results came back clear, so relieved")
	assert.Equal(t, EmotionJoyful, cls.EmotionalState)

	cls = classifier.Classify("Good morning, I would like to enquire about testing services")
	assert.Equal(t, FormalityFormal, cls.Formality)

	cls = classifier.Classify("hey mate, gonna get tested, any tips")
	assert.Equal(t, FormalityCasual, cls.Formality)

	cls = classifier.Classify("Good morning mate, I would like to ask something")
	assert.Equal(t, FormalityMixed, cls.Formality)
}
