package journey

import (
	"strings"

	"github.com/solacehq/solace/internal/registry"
)

// ConnectionLevel describes how connected the user appears to be to
// community support.
type ConnectionLevel string

const (
	ConnectionLow    ConnectionLevel = "low"
	ConnectionMedium ConnectionLevel = "medium"
	ConnectionHigh   ConnectionLevel = "high"
)

// MemoryRecord is a caller-supplied note from the conversation-memory
// store. The core reads it, never writes it.
type MemoryRecord struct {
	Kind string // e.g. communication_style, support_need
	Note string
}

// Context is the per-turn journey context. Transient: rebuilt each turn
// from caller-supplied history and discarded afterwards.
type Context struct {
	Stage               registry.JourneyStage
	EmotionalState      EmotionalState
	Urgency             registry.UrgencyLevel
	Formality           Formality
	Location            registry.UKLocation
	CommunityConnection ConnectionLevel
	FirstTime           bool
	ReturningUser       bool
	PreviousStages      []registry.JourneyStage
	AccessPreference    string
}

// BuildContext assembles the turn context from a classification, the
// caller's stage history and any memory records. Memory records bias
// register and community-connection level only; the stage decision is
// already made.
func BuildContext(cls Classification, loc registry.UKLocation, previous []registry.JourneyStage, memories []MemoryRecord) Context {
	ctx := Context{
		Stage:               cls.Stage,
		EmotionalState:      cls.EmotionalState,
		Urgency:             cls.Urgency,
		Formality:           cls.Formality,
		Location:            loc,
		CommunityConnection: connectionLevel(cls.Stage, previous, memories),
		FirstTime:           len(previous) == 0,
		ReturningUser:       len(previous) > 0,
		PreviousStages:      previous,
	}

	for _, m := range memories {
		note := strings.ToLower(m.Note)
		switch m.Kind {
		case "communication_style":
			if strings.Contains(note, "formal") {
				ctx.Formality = FormalityFormal
			}
		case "support_need":
			switch {
			case strings.Contains(note, "in person"), strings.Contains(note, "face to face"):
				ctx.AccessPreference = "in_person"
			case strings.Contains(note, "phone"):
				ctx.AccessPreference = "phone"
			case strings.Contains(note, "online"):
				ctx.AccessPreference = "online"
			}
		}
	}

	return ctx
}

// SuggestNextStage reports whether a next-stage pathway hint should be
// emitted: when the stage changed from the most recent previous stage,
// or the user is entering their first stage.
func SuggestNextStage(stage registry.JourneyStage, previous []registry.JourneyStage) bool {
	if len(previous) == 0 {
		return true
	}
	return previous[len(previous)-1] != stage
}

// NextStagePathway returns a short suggestion for the stage after the
// current one; empty for the final stage.
func NextStagePathway(stage registry.JourneyStage) string {
	next, ok := stage.Next()
	if !ok {
		return ""
	}

	switch next {
	case registry.StageStabilization:
		return "When you feel ready, the next step is getting settled with a clinic and treatment routine."
	case registry.StageGrowth:
		return "When things feel steadier, many people start learning more about living well and prevention options."
	case registry.StageCommunityHealing:
		return "Connecting with others who share your experience is often the next step people find valuable."
	case registry.StageAdvocacy:
		return "Some people find purpose in advocacy or supporting others along the same path."
	default:
		return ""
	}
}

func connectionLevel(stage registry.JourneyStage, previous []registry.JourneyStage, memories []MemoryRecord) ConnectionLevel {
	if stage == registry.StageCommunityHealing || stage == registry.StageAdvocacy {
		return ConnectionHigh
	}
	for _, p := range previous {
		if p == registry.StageCommunityHealing || p == registry.StageAdvocacy {
			return ConnectionMedium
		}
	}
	for _, m := range memories {
		if strings.Contains(strings.ToLower(m.Note), "group") {
			return ConnectionMedium
		}
	}
	return ConnectionLow
}
