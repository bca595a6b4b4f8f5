package bot

import "maquis/game"

// March: move guerrillas where they are needed, in a fixed priority of
// purposes. Each purpose caps its own destinations; every resolved march is
// trialed through the harness before it is committed, so an unaffordable
// march is abandoned without a trace.

type marchType struct {
	name string
	// cap limits destinations for this march type; 0 means uncapped.
	cap int
	// hiddenOnly requires the group to arrive hidden.
	hiddenOnly func(b *Bot) bool
	// needed is how many guerrillas the destination still wants; zero or
	// negative means the destination is already served.
	needed     func(b *Bot, dest int) int
	dests      func(b *Bot) []int
	priorities func(b *Bot) []Filter[int]
	// preferHidden selects paths by hidden arrivals first, cost second.
	preferHidden bool
}

func never(*Bot) bool       { return false }
func finalOnly(b *Bot) bool { return b.state.FinalCampaign }
func always(*Bot) bool      { return true }

func marchTypes() []marchType {
	return []marchType{
		{
			name:       "screen exposed base",
			hiddenOnly: always,
			needed:     func(b *Bot, dest int) int { return 1 },
			dests: func(b *Bot) []int {
				var out []int
				for _, id := range b.state.SpaceIDs() {
					p := b.state.Pieces(id)
					if p[game.FrontBase] > 0 && p[game.HiddenGuerrillas] == 0 {
						out = append(out, id)
					}
				}
				return out
			},
			priorities: func(b *Bot) []Filter[int] {
				return []Filter[int]{Highest[int]{Name: "most population", Score: func(id int) int {
					return b.state.Space(id).Population
				}}}
			},
			preferHidden: true,
		},
		{
			name:       "mass at friendly city",
			cap:        1,
			hiddenOnly: finalOnly,
			needed: func(b *Bot, dest int) int {
				return 2 - b.state.Pieces(dest).Guerrillas()
			},
			dests: func(b *Bot) []int {
				if !b.state.IsCapability(game.CapCityMarch) {
					return nil
				}
				var out []int
				for _, id := range b.state.SpaceIDs() {
					if b.state.Space(id).Terrain == game.City &&
						b.state.Spaces[id].Support == game.Support {
						out = append(out, id)
					}
				}
				return out
			},
			priorities: func(b *Bot) []Filter[int] {
				return []Filter[int]{Highest[int]{Name: "most population", Score: func(id int) int {
					return b.state.Space(id).Population
				}}}
			},
			preferHidden: true,
		},
		{
			name:       "cover support spaces",
			hiddenOnly: finalOnly,
			needed: func(b *Bot, dest int) int {
				return 1 - b.state.Pieces(dest).Guerrillas()
			},
			dests: func(b *Bot) []int {
				var out []int
				for _, id := range b.state.SpaceIDs() {
					if b.state.Spaces[id].Support == game.Support &&
						b.state.Pieces(id).Guerrillas() == 0 {
						out = append(out, id)
					}
				}
				return out
			},
			priorities: func(b *Bot) []Filter[int] {
				return []Filter[int]{Highest[int]{Name: "most population", Score: func(id int) int {
					return b.state.Space(id).Population
				}}}
			},
			preferHidden: true,
		},
		{
			name:       "break government control",
			cap:        1,
			hiddenOnly: never,
			needed: func(b *Bot, dest int) int {
				p := b.state.Pieces(dest)
				return p.GovPieces() - p.FrontPieces()
			},
			dests: func(b *Bot) []int {
				var out []int
				for _, id := range b.state.SpaceIDs() {
					sp := b.state.Space(id)
					if sp.Country || sp.Population == 0 {
						continue
					}
					if b.state.Control(id) == game.GovControl &&
						b.state.Spaces[id].Support != game.Oppose {
						out = append(out, id)
					}
				}
				return out
			},
			priorities: func(b *Bot) []Filter[int] {
				return []Filter[int]{
					Criterion[int]{Name: "mountain", Match: func(id int) bool {
						return b.state.Space(id).Terrain == game.Mountain
					}},
					Highest[int]{Name: "most population", Score: func(id int) int {
						return b.state.Space(id).Population
					}},
					Lowest[int]{Name: "cheapest to reach", Score: func(id int) int {
						return b.cheapestApproach(id)
					}},
				}
			},
		},
		{
			name:       "seed new base site",
			cap:        1,
			hiddenOnly: never,
			needed:     func(b *Bot, dest int) int { return 3 },
			dests: func(b *Bot) []int {
				if b.state.Available[game.FrontBase] == 0 {
					return nil
				}
				var out []int
				for _, id := range b.state.SpaceIDs() {
					sp := b.state.Space(id)
					st := b.state.Spaces[id]
					if sp.Country || sp.Population > 0 || st.Resettled {
						continue
					}
					if st.Pieces.Bases() == 0 && st.Pieces.Guerrillas() == 0 {
						out = append(out, id)
					}
				}
				return out
			},
			priorities: func(b *Bot) []Filter[int] {
				return []Filter[int]{
					Lowest[int]{Name: "fewest cubes", Score: func(id int) int {
						return b.state.Pieces(id).Cubes()
					}},
					Criterion[int]{Name: "mountain", Match: func(id int) bool {
						return b.state.Space(id).Terrain == game.Mountain
					}},
					Lowest[int]{Name: "cheapest to reach", Score: func(id int) int {
						return b.cheapestApproach(id)
					}},
					Criterion[int]{Name: "reachable hidden", Match: func(id int) bool {
						return b.hiddenApproachExists(id)
					}},
				}
			},
		},
	}
}

// march runs the March operation once per turn.
func (b *Bot) march() (int, bool) {
	if b.turn.MarchConsidered {
		return 0, false
	}
	b.turn.MarchConsidered = true

	spaces := 0
	for _, mt := range marchTypes() {
		done := 0
		dests := mt.dests(b)
		for len(dests) > 0 && (mt.cap == 0 || done < mt.cap) && b.turn.withinBudget(spaces) {
			dest := TopPriority(b.src, dests, mt.priorities(b)...)
			dests = removeID(dests, dest)
			if !b.turn.allowed(dest) || mt.needed(b, dest) <= 0 {
				continue
			}
			if b.resolveMarch(mt, dest) {
				done++
				spaces++
			}
		}
	}
	return spaces, spaces > 0
}

// approach is one source's contribution to a march: the chosen path and how
// many guerrillas it can deliver.
type approach struct {
	path   Path
	move   movable
	hidden bool // group arrives hidden on this path
}

// resolveMarch gathers sources for one destination, picks a path per source,
// allocates guerrillas, and trials the whole march through the harness.
// Returns true when the march was committed.
func (b *Bot) resolveMarch(mt marchType, dest int) bool {
	need := mt.needed(b, dest)
	hiddenOnly := mt.hiddenOnly(b)

	approaches := b.approachesTo(dest, mt.preferHidden || hiddenOnly)
	if len(approaches) == 0 {
		return false
	}

	// Cheapest contributions first.
	var plan []approach
	total := 0
	remaining := append([]approach(nil), approaches...)
	for total < need && len(remaining) > 0 {
		best := TopPriority(b.src, remaining,
			Lowest[approach]{Name: "cheapest", Score: func(a approach) int {
				return b.pathCost(a.path)
			}},
			Highest[approach]{Name: "largest group", Score: func(a approach) int {
				return b.deliverable(a, hiddenOnly)
			}},
		)
		remaining = removeApproach(remaining, best)
		n := b.deliverable(best, hiddenOnly)
		if n == 0 {
			continue
		}
		plan = append(plan, best)
		total += n
	}
	if total < need {
		return false
	}

	t := b.speculate(func(bb *Bot) bool {
		return bb.executeMarch(plan, dest, need, hiddenOnly)
	})
	if !t.ok {
		return false
	}
	b.commit(t)
	return true
}

// deliverable is how many guerrillas an approach can actually deliver under
// the hidden-arrival requirement.
func (b *Bot) deliverable(a approach, hiddenOnly bool) int {
	if hiddenOnly {
		if !a.hidden {
			return 0
		}
		return min(a.move.hidden, a.move.total)
	}
	return a.move.total
}

// approachesTo finds every source space with movable guerrillas and one
// chosen path from it to dest.
func (b *Bot) approachesTo(dest int, preferHidden bool) []approach {
	var out []approach
	for _, src := range b.state.SpaceIDs() {
		if src == dest {
			continue
		}
		m := b.movableGuerrillas(src)
		if m.total == 0 {
			continue
		}
		paths := b.pathsBetween(src, dest)
		if len(paths) == 0 {
			continue
		}

		hiddenArrivals := func(p Path) int {
			if b.pathActivates(p) {
				return 0
			}
			return min(m.hidden, m.total)
		}
		var best Path
		if preferHidden {
			best = TopPriority(b.src, paths,
				Highest[Path]{Name: "most hidden arrivals", Score: hiddenArrivals},
				Lowest[Path]{Name: "cheapest", Score: b.pathCost},
			)
		} else {
			best = TopPriority(b.src, paths,
				Lowest[Path]{Name: "cheapest", Score: b.pathCost},
				Highest[Path]{Name: "most hidden arrivals", Score: hiddenArrivals},
			)
		}
		out = append(out, approach{path: best, move: m, hidden: !b.pathActivates(best)})
	}
	return out
}

// executeMarch runs inside a harness trial: pay for the new spaces, move the
// groups, record them as mid-march. Returns false when the march cannot be
// funded even after extortion.
func (b *Bot) executeMarch(plan []approach, dest, need int, hiddenOnly bool) bool {
	cost := 0
	seen := map[int]bool{}
	for _, a := range plan {
		for _, id := range a.path.Steps[1:] {
			if !seen[id] && !b.turn.Paid[id] {
				seen[id] = true
				cost++
			}
		}
	}

	if b.funds() < cost {
		protect := map[int]int{}
		for _, a := range plan {
			if a.hidden {
				protect[a.path.Source()] += min(a.move.hidden, need)
			}
		}
		b.tryExtort(protect)
	}
	if b.funds() < cost {
		return false
	}
	b.pay(cost)

	left := need
	for _, a := range plan {
		if left == 0 {
			break
		}
		src := a.path.Source()
		n := min(b.deliverable(a, hiddenOnly), left)
		if n == 0 {
			continue
		}
		// Extortion during this trial may have flipped guerrillas the plan
		// counted on, so recheck what the source actually holds.
		p := b.state.Pieces(src)
		hidden := min(n, min(a.move.hidden, p[game.HiddenGuerrillas]))
		if hiddenOnly {
			n = hidden
		}
		if n-hidden > p[game.ActiveGuerrillas] {
			n = hidden + p[game.ActiveGuerrillas]
		}
		if n == 0 {
			continue
		}
		group := game.Of(game.HiddenGuerrillas, hidden).
			Add(game.Of(game.ActiveGuerrillas, n-hidden))
		b.state.Redeploy(src, dest, group, !a.hidden)

		arrived := group
		if !a.hidden {
			arrived[game.ActiveGuerrillas] += arrived[game.HiddenGuerrillas]
			arrived[game.HiddenGuerrillas] = 0
		}
		b.turn.Moving[dest] = b.turn.Moving[dest].Add(arrived)
		b.markPaid(a.path)
		b.state.Logf("march: %d guerrilla(s) from %s to %s",
			n, b.state.Space(src).Name, b.state.Space(dest).Name)
		left -= n
	}
	return left == 0
}

// cheapestApproach scores a destination by its cheapest usable path, for
// destination priorities. Unreachable spaces score high so they sort last.
func (b *Bot) cheapestApproach(dest int) int {
	best := 1 << 10
	for _, a := range b.approachesTo(dest, false) {
		if c := b.pathCost(a.path); c < best {
			best = c
		}
	}
	return best
}

// hiddenApproachExists reports whether any source can arrive hidden.
func (b *Bot) hiddenApproachExists(dest int) bool {
	for _, a := range b.approachesTo(dest, true) {
		if a.hidden && a.move.hidden > 0 {
			return true
		}
	}
	return false
}

func removeApproach(list []approach, target approach) []approach {
	for i := range list {
		if list[i].path.Source() == target.path.Source() {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
