package game

// Card is one action card. The event effect is opaque to the bot: it only
// asks whether the event is playable and, speculatively, whether playing it
// helps.
type Card struct {
	ID   int
	Name string
	// FrontMarked cards are always worth playing for the insurgents.
	FrontMarked bool
	// CapabilityCard events place a lasting capability marker.
	CapabilityCard bool
	// Playable reports whether the event's preconditions hold. Nil means the
	// event side is never playable by the insurgents.
	Playable func(*GameState) bool
	// Effect applies the event. Only called when Playable returned true.
	Effect func(*GameState)
}

// CanPlayEvent reports whether the current card's event side is open to the
// insurgents.
func (g *GameState) CanPlayEvent() bool {
	c := g.Card
	return c != nil && c.Playable != nil && c.Effect != nil && c.Playable(g)
}

// Deck returns the catalog of cards with insurgent-playable events. The full
// game has around seventy; this set is representative of the effect shapes
// the bot has to evaluate.
func Deck() []*Card {
	return []*Card{
		{
			ID: 1, Name: "UN Debate",
			Playable: func(g *GameState) bool { return g.FranceTrack < g.Rules.FranceTrackMax },
			Effect: func(g *GameState) {
				g.ShiftFranceTrack(2)
				g.Logf("UN debate: France track +2")
			},
		},
		{
			ID: 2, Name: "Arms Shipment", FrontMarked: true,
			Playable: func(g *GameState) bool { return true },
			Effect: func(g *GameState) {
				g.AddFrontResources(6)
				g.Logf("arms shipment: +6 resources")
			},
		},
		{
			ID: 3, Name: "Cross-border Camp",
			Playable: func(g *GameState) bool { return g.Available[FrontBase] > 0 },
			Effect: func(g *GameState) {
				for _, id := range g.SpaceIDs() {
					s := g.Space(id)
					if s.Country && g.Spaces[id].Pieces[FrontBase] < g.Rules.BaseLimit(s) {
						g.PlaceFromAvailable(id, Of(FrontBase, 1))
						g.Logf("cross-border camp: base placed in %s", s.Name)
						return
					}
				}
			},
		},
		{
			ID: 4, Name: "Night Raids", CapabilityCard: true,
			Playable: func(g *GameState) bool { return !g.IsCapability(CapQuietAmbush) },
			Effect: func(g *GameState) {
				g.PlayCapability(CapQuietAmbush)
				g.Logf("night raids: ambushes no longer expose the ambusher")
			},
		},
		{
			ID: 5, Name: "General Strike",
			Playable: func(g *GameState) bool {
				for _, id := range g.SpaceIDs() {
					if g.Space(id).Terrain == City && g.Spaces[id].Support == Support {
						return true
					}
				}
				return false
			},
			Effect: func(g *GameState) {
				for _, id := range g.SpaceIDs() {
					if g.Space(id).Terrain == City && g.Spaces[id].Support == Support {
						g.SetSupport(id, Neutral)
						g.Logf("general strike in %s", g.Space(id).Name)
						return
					}
				}
			},
		},
		{
			ID: 6, Name: "Harki Defections", FrontMarked: true,
			Playable: func(g *GameState) bool {
				for _, id := range g.SpaceIDs() {
					p := g.Spaces[id].Pieces
					if p[AlgerianTroops]+p[AlgerianPolice] > 0 {
						return true
					}
				}
				return false
			},
			Effect: func(g *GameState) {
				left := 2
				for _, id := range g.SpaceIDs() {
					for _, k := range []Kind{AlgerianPolice, AlgerianTroops} {
						n := g.Spaces[id].Pieces[k]
						if n > left {
							n = left
						}
						if n == 0 {
							continue
						}
						g.RemoveToOutOfPlay(id, Of(k, n))
						g.Logf("harki defections: %d cube(s) desert in %s", n, g.Space(id).Name)
						left -= n
					}
					if left == 0 {
						return
					}
				}
			},
		},
		{
			ID: 7, Name: "Sympathetic Press",
			Playable: func(g *GameState) bool { return g.GovResources > 0 },
			Effect: func(g *GameState) {
				g.AddGovResources(-2)
				g.Logf("sympathetic press: government resources -2")
			},
		},
	}
}
