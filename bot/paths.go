package bot

import "maquis/game"

// Path is an ordered space sequence a marching group walks, source first,
// destination last. Paths are transient: found, scored, and discarded within
// one March pass.
type Path struct {
	Steps []int
}

func (p Path) Source() int { return p.Steps[0] }
func (p Path) Dest() int   { return p.Steps[len(p.Steps)-1] }

// pathsBetween enumerates every acyclic path from one space to another. A
// single adjacent hop is always allowed; longer paths must stay within one
// wilaya and are only searched when multi-hop movement is permitted.
func (b *Bot) pathsBetween(from, to int) []Path {
	var paths []Path
	if b.state.AreAdjacent(from, to) {
		paths = append(paths, Path{Steps: []int{from, to}})
	}
	if !b.multiHopAllowed() {
		return paths
	}

	fromSp := b.state.Space(from)
	toSp := b.state.Space(to)
	if fromSp.Country || toSp.Country || fromSp.Wilaya != toSp.Wilaya {
		return paths
	}

	visited := map[int]bool{from: true}
	var walk func(at int, steps []int)
	walk = func(at int, steps []int) {
		for _, next := range b.state.Adjacents(at) {
			if visited[next] || b.state.Space(next).Wilaya != fromSp.Wilaya {
				continue
			}
			nextSteps := append(append([]int(nil), steps...), next)
			if next == to {
				if len(nextSteps) > 2 { // adjacent hop already recorded
					paths = append(paths, Path{Steps: nextSteps})
				}
				continue
			}
			visited[next] = true
			walk(next, nextSteps)
			visited[next] = false
		}
	}
	walk(from, []int{from})
	return paths
}

func (b *Bot) multiHopAllowed() bool {
	return b.turn.MaxSpaces != 1 && !b.state.IsCapability(game.CapRestrictedMarch)
}

// pathCost counts the entered spaces not yet charged this turn. Each space
// is charged once per turn no matter how many marches pass through it.
func (b *Bot) pathCost(p Path) int {
	cost := 0
	seen := map[int]bool{}
	for _, id := range p.Steps[1:] {
		if seen[id] || b.turn.Paid[id] {
			continue
		}
		seen[id] = true
		cost++
	}
	return cost
}

// markPaid records a path's spaces as charged.
func (b *Bot) markPaid(p Path) {
	for _, id := range p.Steps[1:] {
		b.turn.Paid[id] = true
	}
}

// pathActivates reports whether a hidden group walking the path is forced
// active somewhere along it.
func (b *Bot) pathActivates(p Path) bool {
	for i, id := range p.Steps[1:] {
		prev := p.Steps[i]
		if b.entryActivates(prev, id) {
			return true
		}
	}
	return false
}

// entryActivates is the per-space activation check for a group stepping from
// one space into the next.
func (b *Bot) entryActivates(from, to int) bool {
	cubes := b.state.Pieces(to).Cubes()

	// International border crossings are watched on the border zone track.
	if b.state.Space(from).Country != b.state.Space(to).Country {
		if cubes > 0 && cubes+b.state.BorderZone > b.state.Rules.BorderActivationLimit {
			return true
		}
	}

	// City checkpoints, only under the population-control momentum rule.
	if b.state.Space(to).Terrain == game.City && b.state.IsMomentum(game.MomPopulationControl) {
		if cubes > b.state.Rules.CityMarchActivation {
			return true
		}
	}

	// Supportive population reports movement when cubes are around to act.
	if b.state.Spaces[to].Support == game.Support && cubes > 0 {
		return true
	}

	return false
}
