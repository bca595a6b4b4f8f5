package game

// SupportLevel is a space's political alignment.
type SupportLevel int

const (
	Oppose SupportLevel = iota
	Neutral
	Support
)

var supportNames = []string{"oppose", "neutral", "support"}

func (s SupportLevel) String() string { return supportNames[s] }

// ControlLevel is derived from the balance of pieces in a space.
type ControlLevel int

const (
	Uncontrolled ControlLevel = iota
	GovControl
	FrontControl
)

// Capability markers flip a rule on for the rest of the game.
type Capability int

const (
	CapFreeCityTerror Capability = iota // city Terror costs nothing
	CapQuietAmbush                      // ambushing guerrilla stays hidden
	CapCityMarch                        // march may mass guerrillas at a friendly city
	CapRestrictedMarch                  // march limited to single adjacent hops
)

// Momentum markers last until the next round's reset.
type Momentum int

const (
	MomSuppressTerrorShift Momentum = iota // terror no longer shifts support
	MomPopulationControl                   // tighter city watch, see Rules.CityMarchActivation
	MomHostileSectors                      // extortion in sectors impossible
)

// SpaceState is the dynamic per-space state.
type SpaceState struct {
	Pieces    PieceCount
	Support   SupportLevel
	Terror    int
	Resettled bool
}

// GameState is the whole dynamic game state. Everything the bot can observe
// or change during a turn is in here, so Copy is a complete snapshot.
type GameState struct {
	Map   *Map
	Rules Rules

	Spaces []SpaceState

	FrontResources int
	GovResources   int
	FranceTrack    int
	BorderZone     int
	Commitment     int

	Available  PieceCount
	Casualties PieceCount
	OutOfPlay  PieceCount
	TerrorPool int

	Capabilities map[Capability]bool
	Momentum     map[Momentum]bool

	FinalCampaign bool
	// Sequence-of-play: the bot is second eligible this round / guaranteed
	// first eligible next round.
	SecondEligible bool
	FirstNext      bool

	Card *Card

	Log []string
}

func NewGameState(m *Map, rules Rules) *GameState {
	g := &GameState{
		Map:          m,
		Rules:        rules,
		Spaces:       make([]SpaceState, len(m.Spaces)),
		TerrorPool:   rules.TerrorMarkers,
		Capabilities: make(map[Capability]bool),
		Momentum:     make(map[Momentum]bool),
	}
	for i := range g.Spaces {
		g.Spaces[i].Support = Neutral
	}
	return g
}

// Copy deep-copies the dynamic state. The map and rules are static and
// shared.
func (g *GameState) Copy() *GameState {
	spaces := make([]SpaceState, len(g.Spaces))
	copy(spaces, g.Spaces)

	caps := make(map[Capability]bool, len(g.Capabilities))
	for k, v := range g.Capabilities {
		caps[k] = v
	}
	mom := make(map[Momentum]bool, len(g.Momentum))
	for k, v := range g.Momentum {
		mom[k] = v
	}
	logCopy := make([]string, len(g.Log))
	copy(logCopy, g.Log)

	return &GameState{
		Map:            g.Map,
		Rules:          g.Rules,
		Spaces:         spaces,
		FrontResources: g.FrontResources,
		GovResources:   g.GovResources,
		FranceTrack:    g.FranceTrack,
		BorderZone:     g.BorderZone,
		Commitment:     g.Commitment,
		Available:      g.Available,
		Casualties:     g.Casualties,
		OutOfPlay:      g.OutOfPlay,
		TerrorPool:     g.TerrorPool,
		Capabilities:   caps,
		Momentum:       mom,
		FinalCampaign:  g.FinalCampaign,
		SecondEligible: g.SecondEligible,
		FirstNext:      g.FirstNext,
		Card:           g.Card,
		Log:            logCopy,
	}
}

// Control derives a space's control from its piece balance.
func (g *GameState) Control(id int) ControlLevel {
	p := g.Spaces[id].Pieces
	switch {
	case p.GovPieces() > p.FrontPieces():
		return GovControl
	case p.FrontPieces() > p.GovPieces():
		return FrontControl
	default:
		return Uncontrolled
	}
}

// GovernmentScore is the government's victory margin: supported population
// plus commitment.
func (g *GameState) GovernmentScore() int {
	score := g.Commitment
	for id, s := range g.Spaces {
		if s.Support == Support {
			score += g.Map.Spaces[id].Population
		}
	}
	return score
}

// FrontScore is the insurgents' victory margin: opposed population plus
// bases on the map.
func (g *GameState) FrontScore() int {
	score := 0
	for id, s := range g.Spaces {
		if s.Support == Oppose {
			score += g.Map.Spaces[id].Population
		}
		score += s.Pieces[FrontBase]
	}
	return score
}
