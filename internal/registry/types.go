// Package registry holds the static catalog of UK support resources and
// knowledge entries, unified behind stage and location filtering.
package registry

import (
	"fmt"
	"time"
)

// JourneyStage is one of five discrete phases of a user's support trajectory.
type JourneyStage string

const (
	StageCrisis           JourneyStage = "crisis"
	StageStabilization    JourneyStage = "stabilization"
	StageGrowth           JourneyStage = "growth"
	StageCommunityHealing JourneyStage = "community_healing"
	StageAdvocacy         JourneyStage = "advocacy"
)

// StageOrder is the declared progression order. It drives next-stage
// suggestions only; users are never forced to move through it monotonically.
var StageOrder = []JourneyStage{
	StageCrisis,
	StageStabilization,
	StageGrowth,
	StageCommunityHealing,
	StageAdvocacy,
}

// Next returns the stage following s in the progression order.
// The final stage has no successor.
func (s JourneyStage) Next() (JourneyStage, bool) {
	for i, stage := range StageOrder {
		if stage == s && i+1 < len(StageOrder) {
			return StageOrder[i+1], true
		}
	}
	return "", false
}

// Valid reports whether s is a declared stage.
func (s JourneyStage) Valid() bool {
	for _, stage := range StageOrder {
		if stage == s {
			return true
		}
	}
	return false
}

// UrgencyLevel is derived per turn, never stored.
type UrgencyLevel string

const (
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyLow       UrgencyLevel = "low"
)

// CostTier describes what using a resource costs the user.
type CostTier string

const (
	CostFree         CostTier = "free"
	CostNHSFunded    CostTier = "nhs_funded"
	CostSlidingScale CostTier = "sliding_scale"
	CostPaid         CostTier = "paid"
)

// VerificationStatus tracks editorial review of a knowledge entry.
type VerificationStatus string

const (
	StatusVerified VerificationStatus = "verified"
	StatusPending  VerificationStatus = "pending"
	StatusOutdated VerificationStatus = "outdated"
)

// CulturalCompetency flags which communities a resource explicitly serves.
type CulturalCompetency struct {
	BlackSpecific  bool
	LGBTQSpecific  bool
	FaithSensitive bool
}

// MatchCount returns how many competency flags are set.
func (c CulturalCompetency) MatchCount() int {
	n := 0
	if c.BlackSpecific {
		n++
	}
	if c.LGBTQSpecific {
		n++
	}
	if c.FaithSensitive {
		n++
	}
	return n
}

// CulturallySpecific reports whether the resource is marked for Black
// and/or LGBTQ+ communities, the two flags ranking cares about.
func (c CulturalCompetency) CulturallySpecific() bool {
	return c.BlackSpecific || c.LGBTQSpecific
}

// Resource is a support service a user can be referred to.
type Resource struct {
	ID            string
	Title         string
	Description   string
	Category      string
	JourneyStages []JourneyStage
	Locations     []UKLocation
	Cost          CostTier
	Cultural      CulturalCompetency
	Emergency     bool
	Availability  string
	Phone         string
	Website       string
	Email         string
}

// HasVerifiableContact reports whether the resource lists a phone number
// or website a user could actually reach.
func (r Resource) HasVerifiableContact() bool {
	return r.Phone != "" || r.Website != ""
}

func (r Resource) validate() error {
	if r.ID == "" {
		return fmt.Errorf("resource %q: empty id", r.Title)
	}
	if len(r.JourneyStages) == 0 {
		return fmt.Errorf("resource %s: no journey stages", r.ID)
	}
	if len(r.Locations) == 0 {
		return fmt.Errorf("resource %s: no locations", r.ID)
	}
	for _, s := range r.JourneyStages {
		if !s.Valid() {
			return fmt.Errorf("resource %s: unknown stage %q", r.ID, s)
		}
	}
	return nil
}

// KnowledgeEntry is a piece of editorial content with provenance.
type KnowledgeEntry struct {
	ID                 string
	Content            string
	Category           string
	JourneyStages      []JourneyStage
	Locations          []UKLocation
	Tags               []string
	Sources            []string // URLs; may be empty
	LastUpdated        time.Time
	Verification       VerificationStatus
	CommunityValidated bool
}

func (k KnowledgeEntry) validate() error {
	if k.ID == "" {
		return fmt.Errorf("knowledge entry %.40q: empty id", k.Content)
	}
	if len(k.JourneyStages) == 0 {
		return fmt.Errorf("knowledge %s: no journey stages", k.ID)
	}
	if len(k.Locations) == 0 {
		return fmt.Errorf("knowledge %s: no locations", k.ID)
	}
	return nil
}
