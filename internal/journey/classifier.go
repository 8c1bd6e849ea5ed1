// Package journey classifies a user's message into a support-journey stage
// with urgency, emotional state and register signals.
package journey

import (
	"strings"

	"github.com/solacehq/solace/internal/registry"
)

// EmotionalState is a tone signal for the reply generator. It never
// affects the stage decision.
type EmotionalState string

const (
	EmotionStressed    EmotionalState = "stressed"
	EmotionOverwhelmed EmotionalState = "overwhelmed"
	EmotionJoyful      EmotionalState = "joyful"
	EmotionExcited     EmotionalState = "excited"
	EmotionUncertain   EmotionalState = "uncertain"
	EmotionCalm        EmotionalState = "calm"
)

// Formality is the detected register of the message.
type Formality string

const (
	FormalityFormal Formality = "formal"
	FormalityCasual Formality = "casual"
	FormalityMixed  Formality = "mixed"
)

// Classification is the classifier's output for one message.
type Classification struct {
	Stage          registry.JourneyStage
	Urgency        registry.UrgencyLevel
	EmotionalState EmotionalState
	Formality      Formality
	// StageMatched is false when no indicator set matched and the stage
	// fell back to the lowest-urgency default.
	StageMatched bool
}

// stageRule couples a stage with its indicator set. The order of
// stageRules IS the resolution precedence: when several stages match,
// the earliest rule wins. Crisis first is a safety policy, not an
// implementation accident.
type stageRule struct {
	stage      registry.JourneyStage
	indicators []string
}

var stageRules = []stageRule{
	{
		stage: registry.StageCrisis,
		indicators: []string{
			"just got diagnosed", "just been diagnosed", "just found out",
			"diagnosed", "positive result", "tested positive",
			"terrified", "scared", "panicking", "panic",
			"crisis", "can't cope", "cant cope", "falling apart",
			"want to die", "suicide", "suicidal", "end it all",
			"emergency", "was exposed", "might have hiv",
			"don't know what to do", "dont know what to do",
		},
	},
	{
		stage: registry.StageStabilization,
		indicators: []string{
			"starting treatment", "started treatment", "medication",
			"side effects", "adherence", "appointment", "my clinic",
			"viral load", "cd4", "getting used to", "routine",
			"managing", "manage my", "settling",
		},
	},
	{
		stage: registry.StageGrowth,
		indicators: []string{
			"learn", "understand", "how to get", "how do i get",
			"prep", "prevention", "information about", "find out",
			"improve", "healthy", "stay well", "my future",
			"options", "thinking about",
		},
	},
	{
		stage: registry.StageCommunityHealing,
		indicators: []string{
			"community", "others like me", "support group", "peer",
			"connect with", "meet people", "share my story",
			"belonging", "not alone", "group",
		},
	},
	{
		stage: registry.StageAdvocacy,
		indicators: []string{
			"advocate", "advocacy", "volunteer", "campaign",
			"activism", "help others", "give back", "fight stigma",
			"speak out", "policy", "my rights", "rights at work",
		},
	},
}

// urgencyVocabulary escalates any message to emergency urgency,
// independent of the stage decision.
var urgencyVocabulary = []string{
	"emergency", "urgent", "urgently", "suicide", "suicidal",
	"right now", "immediately", "tonight", "999", "a&e",
	"can't wait", "cant wait any longer",
}

var emotionRules = []struct {
	state      EmotionalState
	indicators []string
}{
	{EmotionOverwhelmed, []string{"overwhelmed", "too much", "can't cope", "cant cope", "drowning", "falling apart"}},
	{EmotionStressed, []string{"terrified", "scared", "stressed", "anxious", "worried", "panicking", "panic", "nervous"}},
	{EmotionUncertain, []string{"not sure", "unsure", "confused", "don't know", "dont know", "uncertain", "maybe"}},
	{EmotionJoyful, []string{"happy", "joyful", "grateful", "relieved", "good news", "great news"}},
	{EmotionExcited, []string{"excited", "thrilled", "looking forward"}},
}

var formalIndicators = []string{
	"dear", "kind regards", "i would like to", "could you please",
	"thank you for your", "good morning", "good afternoon", "i am writing",
}

var casualIndicators = []string{
	"hey", "hiya", "lol", "mate", "gonna", "wanna", "thx", "cheers",
	"btw", "tbh", "omg",
}

// Classifier derives stage, urgency and tone signals from message text.
// Stateless and safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify evaluates the message against every stage indicator set, then
// resolves collisions by the fixed precedence order. A message with no
// stage indicators defaults to growth, the lowest-urgency stage.
func (c *Classifier) Classify(text string) Classification {
	t := strings.ToLower(text)

	// Evaluate all sets; no short-circuit. The match set feeds both the
	// stage decision and tests that audit the precedence rule.
	matched := make(map[registry.JourneyStage]bool, len(stageRules))
	for _, rule := range stageRules {
		if containsAny(t, rule.indicators) {
			matched[rule.stage] = true
		}
	}

	stage := registry.StageGrowth
	stageMatched := false
	for _, rule := range stageRules {
		if matched[rule.stage] {
			stage = rule.stage
			stageMatched = true
			break
		}
	}

	return Classification{
		Stage:          stage,
		Urgency:        c.deriveUrgency(t, stage),
		EmotionalState: detectEmotion(t),
		Formality:      detectFormality(t),
		StageMatched:   stageMatched,
	}
}

// deriveUrgency maps stage to a base urgency, escalated to emergency
// whenever explicit urgency vocabulary appears.
func (c *Classifier) deriveUrgency(t string, stage registry.JourneyStage) registry.UrgencyLevel {
	if containsAny(t, urgencyVocabulary) {
		return registry.UrgencyEmergency
	}

	switch stage {
	case registry.StageCrisis:
		return registry.UrgencyHigh
	case registry.StageStabilization:
		return registry.UrgencyMedium
	default:
		return registry.UrgencyLow
	}
}

func detectEmotion(t string) EmotionalState {
	for _, rule := range emotionRules {
		if containsAny(t, rule.indicators) {
			return rule.state
		}
	}
	return EmotionCalm
}

func detectFormality(t string) Formality {
	formal := containsAny(t, formalIndicators)
	casual := containsAny(t, casualIndicators)

	switch {
	case formal && casual:
		return FormalityMixed
	case formal:
		return FormalityFormal
	default:
		return FormalityCasual
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
