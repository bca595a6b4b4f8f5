package bot

import "maquis/game"

// attack runs the Attack operation: overwhelm government pieces where the
// guerrilla mass guarantees a kill, with ambushes as the precision option.
// The operation only proceeds when it projects at least two government
// pieces removed over the whole turn.
func (b *Bot) attack() (int, bool) {
	var guaranteed, ambushable []int
	for _, id := range b.state.SpaceIDs() {
		if !b.turn.allowed(id) {
			continue
		}
		p := b.state.Pieces(id)
		if p.GovPieces() == 0 {
			continue
		}
		if p.Guerrillas() >= 6 && p[game.FrontBase] == 0 {
			guaranteed = append(guaranteed, id)
		} else if b.safelyFlippable(id) {
			ambushable = append(ambushable, id)
		}
	}

	removable := func(id int) int {
		return min(2, b.state.Pieces(id).GovPieces())
	}

	priorities := []Filter[int]{
		Criterion[int]{Name: "exposed base", Match: func(id int) bool {
			return b.state.Pieces(id)[game.GovBase] > 0
		}},
		Criterion[int]{Name: "french troops present", Match: func(id int) bool {
			return b.state.Pieces(id)[game.FrenchTroops] > 0
		}},
		Criterion[int]{Name: "french police present", Match: func(id int) bool {
			return b.state.Pieces(id)[game.FrenchPolice] > 0
		}},
		Highest[int]{Name: "most removable", Score: removable},
	}

	// Single-space turn: one sure kill or nothing.
	if b.turn.MaxSpaces == 1 {
		if len(guaranteed) == 0 || b.funds() == 0 {
			return 0, false
		}
		id := TopPriority(b.src, guaranteed, priorities...)
		if removable(id) < 2 {
			return 0, false
		}
		b.pay(1)
		b.resolveAttack(id, false)
		return 1, true
	}

	projected := 0
	for _, id := range guaranteed {
		projected += removable(id)
	}
	if b.turn.SpecialAllowed && !b.turn.SpecialTaken {
		projected += min(2, len(ambushable))
	}
	if projected < 2 {
		return 0, false
	}

	spaces := 0
	attacked := map[int]bool{}
	for len(guaranteed) > 0 && b.funds() > 0 && b.turn.withinBudget(spaces) {
		id := TopPriority(b.src, guaranteed, priorities...)
		b.pay(1)
		b.resolveAttack(id, false)
		guaranteed = removeID(guaranteed, id)
		ambushable = removeID(ambushable, id)
		attacked[id] = true
		spaces++
	}

	if b.turn.SpecialAllowed && !b.turn.SpecialTaken && len(ambushable) > 0 {
		ambushed := 0
		for len(ambushable) > 0 && ambushed < 2 && b.funds() > 0 && b.turn.withinBudget(spaces) {
			id := TopPriority(b.src, ambushable, priorities...)
			if ambushed == 0 {
				b.turn.takeSpecial()
			}
			b.pay(1)
			b.resolveAttack(id, true)
			ambushable = removeID(ambushable, id)
			attacked[id] = true
			ambushed++
			spaces++
		}
	}

	// One more swing with a smaller band if a resource is left over. Only a
	// space untouched this pass qualifies.
	if b.funds() > 0 && b.turn.withinBudget(spaces) {
		var extra []int
		for _, id := range b.state.SpaceIDs() {
			if !b.turn.allowed(id) || attacked[id] {
				continue
			}
			p := b.state.Pieces(id)
			if p.Guerrillas() >= 4 && p[game.FrontBase] == 0 && p.GovPieces() > 0 &&
				p[game.HiddenGuerrillas]+p[game.ActiveGuerrillas] < 6 {
				extra = append(extra, id)
			}
		}
		if len(extra) > 0 {
			id := TopPriority(b.src, extra, priorities...)
			b.pay(1)
			b.resolveAttack(id, false)
			spaces++
		}
	}

	return spaces, spaces > 0
}

// resolveAttack fights out one space. Without ambush every hidden guerrilla
// is revealed and a die decides; an ambush kills quietly but caps at one
// piece.
func (b *Bot) resolveAttack(id int, ambush bool) {
	p := b.state.Pieces(id)

	if ambush {
		removed := b.removeGovPieces(id, 1)
		if !b.state.IsCapability(game.CapQuietAmbush) && p[game.HiddenGuerrillas] > 0 {
			b.state.ActivateGuerrillas(id, 1)
		}
		b.state.Logf("ambush in %s removes %d piece(s)", b.state.Space(id).Name, removed.Total())
		return
	}

	b.state.ActivateGuerrillas(id, p[game.HiddenGuerrillas])
	die := roll(b.src)
	if die <= b.state.Pieces(id).Guerrillas() {
		removed := b.removeGovPieces(id, 2)
		if removed.Cubes() > 0 || removed[game.GovBase] > 0 {
			// Attrition: the firefight costs a guerrilla.
			loss := game.Of(game.ActiveGuerrillas, 1)
			if b.state.Pieces(id)[game.ActiveGuerrillas] == 0 {
				loss = game.Of(game.HiddenGuerrillas, 1)
			}
			b.state.RemoveToCasualties(id, loss)
		}
		b.state.Logf("attack in %s (rolled %d) removes %d piece(s)",
			b.state.Space(id).Name, die, removed.Total())
	} else {
		b.state.Logf("attack in %s (rolled %d) misses", b.state.Space(id).Name, die)
	}
	if die == 1 && b.state.Available[game.HiddenGuerrillas] > 0 {
		b.state.PlaceFromAvailable(id, game.Of(game.HiddenGuerrillas, 1))
	}
}

// removeGovPieces removes up to max government pieces, police first, bases
// last, and returns what was removed.
func (b *Bot) removeGovPieces(id, max int) game.PieceCount {
	order := []game.Kind{
		game.FrenchPolice, game.AlgerianPolice,
		game.FrenchTroops, game.AlgerianTroops, game.GovBase,
	}
	var removed game.PieceCount
	left := max
	for _, kind := range order {
		if left == 0 {
			break
		}
		n := min(left, b.state.Pieces(id)[kind])
		if n == 0 {
			continue
		}
		b.state.RemoveToCasualties(id, game.Of(kind, n))
		removed[kind] += n
		left -= n
	}
	return removed
}
