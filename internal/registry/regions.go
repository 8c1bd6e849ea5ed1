package registry

import "strings"

// UKLocation is a caller-supplied location value, typically a city name.
// "unknown" and "nationwide" are both legal values.
type UKLocation string

const (
	LocationUnknown    UKLocation = "unknown"
	LocationNationwide UKLocation = "nationwide"
)

// UKRegion is the macro-geographic grouping used to scope resources.
type UKRegion string

const (
	RegionLondon          UKRegion = "london"
	RegionNorthWest       UKRegion = "north_west"
	RegionNorthEast       UKRegion = "north_east"
	RegionYorkshire       UKRegion = "yorkshire_humber"
	RegionWestMidlands    UKRegion = "west_midlands"
	RegionEastMidlands    UKRegion = "east_midlands"
	RegionSouthWest       UKRegion = "south_west"
	RegionSouthEast       UKRegion = "south_east"
	RegionEastOfEngland   UKRegion = "east_of_england"
	RegionScotland        UKRegion = "scotland"
	RegionWales           UKRegion = "wales"
	RegionNorthernIreland UKRegion = "northern_ireland"
	RegionNationwide      UKRegion = "nationwide"
)

// regionByLocation is the total mapping table. Anything absent resolves
// to nationwide, so the lookup never fails.
var regionByLocation = map[UKLocation]UKRegion{
	"london":        RegionLondon,
	"croydon":       RegionLondon,
	"hackney":       RegionLondon,
	"lambeth":       RegionLondon,
	"manchester":    RegionNorthWest,
	"liverpool":     RegionNorthWest,
	"preston":       RegionNorthWest,
	"blackpool":     RegionNorthWest,
	"newcastle":     RegionNorthEast,
	"sunderland":    RegionNorthEast,
	"middlesbrough": RegionNorthEast,
	"leeds":         RegionYorkshire,
	"sheffield":     RegionYorkshire,
	"bradford":      RegionYorkshire,
	"hull":          RegionYorkshire,
	"birmingham":    RegionWestMidlands,
	"coventry":      RegionWestMidlands,
	"wolverhampton": RegionWestMidlands,
	"nottingham":    RegionEastMidlands,
	"leicester":     RegionEastMidlands,
	"derby":         RegionEastMidlands,
	"bristol":       RegionSouthWest,
	"plymouth":      RegionSouthWest,
	"exeter":        RegionSouthWest,
	"brighton":      RegionSouthEast,
	"southampton":   RegionSouthEast,
	"portsmouth":    RegionSouthEast,
	"oxford":        RegionSouthEast,
	"reading":       RegionSouthEast,
	"cambridge":     RegionEastOfEngland,
	"norwich":       RegionEastOfEngland,
	"luton":         RegionEastOfEngland,
	"glasgow":       RegionScotland,
	"edinburgh":     RegionScotland,
	"aberdeen":      RegionScotland,
	"dundee":        RegionScotland,
	"cardiff":       RegionWales,
	"swansea":       RegionWales,
	"newport":       RegionWales,
	"belfast":       RegionNorthernIreland,
	"derry":         RegionNorthernIreland,
	"unknown":       RegionNationwide,
	"nationwide":    RegionNationwide,
}

// RegionForLocation resolves a location to its region. Total and pure:
// unmapped or empty input resolves to nationwide.
func RegionForLocation(loc UKLocation) UKRegion {
	normalized := UKLocation(strings.ToLower(strings.TrimSpace(string(loc))))
	if region, ok := regionByLocation[normalized]; ok {
		return region
	}
	return RegionNationwide
}

// KnownLocations returns every declared location value, for exhaustive tests.
func KnownLocations() []UKLocation {
	locs := make([]UKLocation, 0, len(regionByLocation))
	for loc := range regionByLocation {
		locs = append(locs, loc)
	}
	return locs
}
