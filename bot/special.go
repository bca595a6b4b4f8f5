package bot

import (
	"maquis/game"
	"maquis/utils"
)

// Special activities ride along with a full operation and are usable once
// per turn.

// tryExtort flips hidden guerrillas active for one resource each. protect
// maps space id to hidden guerrillas that must stay hidden because the
// operation in progress needs them. Returns true when at least one resource
// was gained.
func (b *Bot) tryExtort(protect map[int]int) bool {
	if !b.turn.SpecialAllowed || b.turn.SpecialTaken {
		return false
	}

	reserve := func(id int) int {
		r := protect[id]
		if b.state.Pieces(id)[game.FrontBase] > 0 {
			r++
		}
		return r
	}

	hostile := b.state.IsMomentum(game.MomHostileSectors)
	var primary []int
	for _, id := range b.state.SpaceIDs() {
		sp := b.state.Space(id)
		p := b.state.Pieces(id)
		if p[game.HiddenGuerrillas] <= reserve(id) {
			continue
		}
		if sp.Country {
			primary = append(primary, id)
			continue
		}
		if hostile && sp.Terrain != game.City {
			continue
		}
		if sp.Population > 0 && b.state.Control(id) == game.FrontControl {
			primary = append(primary, id)
		}
	}

	gained := 0
	for _, id := range primary {
		b.state.ActivateGuerrillas(id, 1)
		b.state.AddFrontResources(1)
		b.state.Logf("extort in %s", b.state.Space(id).Name)
		gained++
	}

	// Secondary spaces only count when the primary sweep left the till empty.
	if b.state.FrontResources == 0 {
		for _, id := range b.state.SpaceIDs() {
			if utils.Contains(primary, id) {
				continue
			}
			sp := b.state.Space(id)
			p := b.state.Pieces(id)
			if sp.Population == 0 || p[game.HiddenGuerrillas] <= reserve(id) {
				continue
			}
			if p.FrontPieces() <= p.GovPieces() {
				continue
			}
			b.state.ActivateGuerrillas(id, 1)
			b.state.AddFrontResources(1)
			b.state.Logf("extort in %s", b.state.Space(id).Name)
			gained++
		}
	}

	if gained == 0 {
		return false
	}
	b.turn.takeSpecial()
	return true
}

// trySubvert removes or converts Algerian government cubes using hidden
// guerrillas as agents. No guerrilla is ever activated by it.
func (b *Bot) trySubvert() bool {
	if !b.turn.SpecialAllowed || b.turn.SpecialTaken {
		return false
	}

	algerianCubes := func(id int) int {
		p := b.state.Pieces(id)
		return p[game.AlgerianTroops] + p[game.AlgerianPolice]
	}
	unsupported := func(id int) bool {
		p := b.state.Pieces(id)
		return p[game.HiddenGuerrillas] > 0 &&
			p[game.FrenchTroops] == 0 && p[game.FrenchPolice] == 0
	}
	removeCubes := func(id, n int) {
		p := b.state.Pieces(id)
		police := min(n, p[game.AlgerianPolice])
		troops := n - police
		pc := game.Of(game.AlgerianPolice, police).Add(game.Of(game.AlgerianTroops, troops))
		b.state.RemoveToAvailable(id, pc)
		b.state.Logf("subvert removes %d cube(s) in %s", n, b.state.Space(id).Name)
	}

	// Last two unsupported cubes in one space.
	var pairs []int
	for _, id := range b.state.SpaceIDs() {
		if unsupported(id) && algerianCubes(id) == 2 {
			pairs = append(pairs, id)
		}
	}
	if len(pairs) > 0 {
		id := TopPriority(b.src, pairs,
			Highest[int]{Name: "most population", Score: func(id int) int { return b.state.Space(id).Population }})
		removeCubes(id, 2)
		b.turn.takeSpecial()
		return true
	}

	// Last cube in up to two spaces.
	var singles []int
	for _, id := range b.state.SpaceIDs() {
		if unsupported(id) && algerianCubes(id) == 1 {
			singles = append(singles, id)
		}
	}
	if len(singles) > 0 {
		for i := 0; i < 2 && len(singles) > 0; i++ {
			id := TopPriority(b.src, singles,
				Highest[int]{Name: "most population", Score: func(id int) int { return b.state.Space(id).Population }})
			removeCubes(id, 1)
			singles = removeID(singles, id)
		}
		b.turn.takeSpecial()
		return true
	}

	// Convert a police cube, then a troop cube, into a guerrilla.
	for _, kind := range []game.Kind{game.AlgerianPolice, game.AlgerianTroops} {
		if b.state.Available[game.HiddenGuerrillas] == 0 {
			break
		}
		var conv []int
		for _, id := range b.state.SpaceIDs() {
			p := b.state.Pieces(id)
			if p[game.HiddenGuerrillas] > 0 && p[kind] > 0 {
				conv = append(conv, id)
			}
		}
		if len(conv) == 0 {
			continue
		}
		id := TopPriority(b.src, conv,
			Highest[int]{Name: "most population", Score: func(id int) int { return b.state.Space(id).Population }})
		b.state.RemoveToAvailable(id, game.Of(kind, 1))
		b.state.PlaceFromAvailable(id, game.Of(game.HiddenGuerrillas, 1))
		b.state.Logf("subvert converts a cube in %s", b.state.Space(id).Name)
		b.turn.takeSpecial()
		return true
	}

	return false
}
