package game

// Rules holds the tunable rule constants. Two of them cover points where the
// published rulebook is read differently by different groups; the defaults
// follow the more common reading.
type Rules struct {
	// CityMarchActivation is the government cube count above which guerrillas
	// marching into a city are forced active while the population-control
	// momentum rule is in play. Groups read the rulebook as either 1 or 2.
	CityMarchActivation int
	// BorderActivationLimit: crossing an international border forces the
	// marching group active when government cubes at the entered space plus
	// the border zone track exceed this limit.
	BorderActivationLimit int
	// EventTieToEvent: when a speculative event and a speculative Terror end
	// on the same government score, play the event.
	EventTieToEvent bool
	// RallyCheapThreshold: below this resource total Rally is not capped by
	// the two-thirds budget rule.
	RallyCheapThreshold int
	FranceTrackMax      int
	BorderZoneMax       int
	BasesPerSector      int
	BasesPerCountry     int
	TerrorMarkers       int
}

func NewStandardRules() Rules {
	return Rules{
		CityMarchActivation:   1,
		BorderActivationLimit: 3,
		EventTieToEvent:       true,
		RallyCheapThreshold:   9,
		FranceTrackMax:        5,
		BorderZoneMax:         3,
		BasesPerSector:        1,
		BasesPerCountry:       2,
		TerrorMarkers:         12,
	}
}

// BaseLimit is the stacking limit for bases in the given space.
func (r Rules) BaseLimit(s *Space) int {
	if s.Country {
		return r.BasesPerCountry
	}
	return r.BasesPerSector
}
