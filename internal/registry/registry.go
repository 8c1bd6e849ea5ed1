package registry

import (
	"fmt"
	"strings"
)

// Registry is the immutable in-memory catalog. Built once at process
// start from the static provider tables; safe for concurrent reads.
type Registry struct {
	resources []Resource
	knowledge []KnowledgeEntry
}

// QueryOptions narrows a resource query beyond stage and location.
type QueryOptions struct {
	// Urgency restricts results to emergency-flagged resources when set
	// to UrgencyEmergency. Other values do not restrict.
	Urgency UrgencyLevel
	// Category, when non-empty, substring-matches resource categories
	// case-insensitively.
	Category string
}

// New builds the registry from all static providers and validates it.
func New() (*Registry, error) {
	r := &Registry{}

	providers := [][]Resource{
		nationwideResources(),
		londonResources(),
		northernResources(),
		midlandsAndSouthResources(),
		devolvedNationsResources(),
	}
	for _, set := range providers {
		r.resources = append(r.resources, set...)
	}
	r.knowledge = knowledgeEntries()

	seen := make(map[string]bool, len(r.resources))
	for _, res := range r.resources {
		if err := res.validate(); err != nil {
			return nil, err
		}
		if seen[res.ID] {
			return nil, fmt.Errorf("duplicate resource id %s", res.ID)
		}
		seen[res.ID] = true
	}

	seenK := make(map[string]bool, len(r.knowledge))
	for _, k := range r.knowledge {
		if err := k.validate(); err != nil {
			return nil, err
		}
		if seenK[k.ID] {
			return nil, fmt.Errorf("duplicate knowledge id %s", k.ID)
		}
		seenK[k.ID] = true
	}

	return r, nil
}

// ResourceCount reports the catalog size.
func (r *Registry) ResourceCount() int { return len(r.resources) }

// KnowledgeCount reports the number of knowledge entries.
func (r *Registry) KnowledgeCount() int { return len(r.knowledge) }

// QueryResources returns resources serving the given stage and location,
// in stable catalog order. Misses return an empty slice, never an error;
// fallback (nationwide-only, then generic guidance) is the caller's job.
func (r *Registry) QueryResources(stage JourneyStage, loc UKLocation, opts QueryOptions) []Resource {
	var out []Resource
	for _, res := range r.resources {
		if !servesStage(res.JourneyStages, stage) {
			continue
		}
		if !servesLocation(res.Locations, loc) {
			continue
		}
		if opts.Urgency == UrgencyEmergency && !res.Emergency {
			continue
		}
		if opts.Category != "" && !containsFold(res.Category, opts.Category) {
			continue
		}
		out = append(out, res)
	}
	return out
}

// QueryKnowledge returns knowledge entries for the stage and location
// whose category or tags match topic. Empty topic matches everything.
func (r *Registry) QueryKnowledge(topic string, stage JourneyStage, loc UKLocation) []KnowledgeEntry {
	var out []KnowledgeEntry
	for _, k := range r.knowledge {
		if !servesStage(k.JourneyStages, stage) {
			continue
		}
		if !servesLocation(k.Locations, loc) {
			continue
		}
		if topic != "" && !matchesTopic(k, topic) {
			continue
		}
		out = append(out, k)
	}
	return out
}

// EmergencyResources returns every emergency-flagged resource serving the
// location, regardless of stage.
func (r *Registry) EmergencyResources(loc UKLocation) []Resource {
	var out []Resource
	for _, res := range r.resources {
		if res.Emergency && servesLocation(res.Locations, loc) {
			out = append(out, res)
		}
	}
	return out
}

// CulturallySpecificResources returns stage/location matches marked for
// Black and/or LGBTQ+ communities.
func (r *Registry) CulturallySpecificResources(stage JourneyStage, loc UKLocation) []Resource {
	var out []Resource
	for _, res := range r.QueryResources(stage, loc, QueryOptions{}) {
		if res.Cultural.CulturallySpecific() {
			out = append(out, res)
		}
	}
	return out
}

// servesStage matches an entity's stage set. An empty stage is no filter.
func servesStage(stages []JourneyStage, stage JourneyStage) bool {
	if stage == "" {
		return true
	}
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}

// servesLocation matches an entity's location set against the target:
// exact location, nationwide or unknown coverage, or any location in the
// same region. Region co-location never matches a nationwide target, so a
// nationwide-only query sees only nationwide resources.
func servesLocation(locs []UKLocation, target UKLocation) bool {
	targetRegion := RegionForLocation(target)
	for _, l := range locs {
		if l == target || l == LocationNationwide || l == LocationUnknown {
			return true
		}
		if targetRegion != RegionNationwide && RegionForLocation(l) == targetRegion {
			return true
		}
	}
	return false
}

func matchesTopic(k KnowledgeEntry, topic string) bool {
	if containsFold(k.Category, topic) {
		return true
	}
	for _, tag := range k.Tags {
		if containsFold(tag, topic) || containsFold(topic, tag) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
