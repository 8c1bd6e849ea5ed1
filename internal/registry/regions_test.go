package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionForLocation(t *testing.T) {
	tests := []struct {
		loc      UKLocation
		expected UKRegion
	}{
		{"london", RegionLondon},
		{"manchester", RegionNorthWest},
		{"liverpool", RegionNorthWest},
		{"glasgow", RegionScotland},
		{"cardiff", RegionWales},
		{"belfast", RegionNorthernIreland},
		{"birmingham", RegionWestMidlands},
		{LocationUnknown, RegionNationwide},
		{LocationNationwide, RegionNationwide},
		{"", RegionNationwide},
		{"atlantis", RegionNationwide},
	}

	for _, tc := range tests {
		t.Run(string(tc.loc), func(t *testing.T) {
			assert.Equal(t, tc.expected, RegionForLocation(tc.loc))
		})
	}
}

func TestRegionForLocation_NormalizesInput(t *testing.T) {
	assert.Equal(t, RegionLondon, RegionForLocation("  London "))
	assert.Equal(t, RegionNorthWest, RegionForLocation("MANCHESTER"))
}

func TestRegionForLocation_Total(t *testing.T) {
	// Every declared location resolves to a non-empty region.
	for _, loc := range KnownLocations() {
		assert.NotEmpty(t, RegionForLocation(loc), "no region for %s", loc)
	}
}

func TestJourneyStage_Next(t *testing.T) {
	next, ok := StageCrisis.Next()
	assert.True(t, ok)
	assert.Equal(t, StageStabilization, next)

	next, ok = StageCommunityHealing.Next()
	assert.True(t, ok)
	assert.Equal(t, StageAdvocacy, next)

	_, ok = StageAdvocacy.Next()
	assert.False(t, ok, "final stage has no successor")
}

func TestJourneyStage_Valid(t *testing.T) {
	for _, s := range StageOrder {
		assert.True(t, s.Valid())
	}
	assert.False(t, JourneyStage("bogus").Valid())
	assert.False(t, JourneyStage("").Valid())
}
