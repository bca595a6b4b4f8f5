package bot

import "maquis/game"

// rally runs the Rally operation: build and protect bases, feed guerrillas
// to the places that need them, and set up one agitation. It runs at most
// once per turn.
func (b *Bot) rally() (int, bool) {
	if b.turn.RallyConsidered {
		return 0, false
	}
	b.turn.RallyConsidered = true

	if !b.shouldRally() {
		return 0, false
	}

	r := &rallyRun{
		b:             b,
		max:           b.maxTotalRallies(),
		touched:       make(map[int]bool),
		agitateTarget: -1,
	}

	r.placeBases(false)
	r.placeBases(true)
	r.reinforceBases()
	r.shiftFranceTrack()
	r.coverSupportSectors()
	r.pickAgitateTarget(2)
	r.reinforceKeySpaces()
	r.spreadFromGuerrillas()
	if r.agitateTarget < 0 {
		r.pickAgitateTarget(1)
	}
	r.agitate()

	spaces := len(r.touched)
	if r.franceShifted {
		spaces++
	}
	return spaces, spaces > 0
}

// shouldRally: rally when a base can legally be placed, or when the base
// line looks thin on guerrillas (with a random nudge so the bot is not
// perfectly predictable about it).
func (b *Bot) shouldRally() bool {
	if b.canPlaceBaseAnywhere() {
		return true
	}
	bases := b.state.TotalOnMap(game.FrontBase)
	if bases == 0 {
		return false
	}
	atBases := 0
	for _, id := range b.state.SpaceIDs() {
		if b.state.Pieces(id)[game.FrontBase] > 0 {
			atBases += b.state.Pieces(id).Guerrillas()
		}
	}
	return atBases < 2*bases+roll(b.src)/3
}

func (b *Bot) canPlaceBaseAnywhere() bool {
	if b.state.Available[game.FrontBase] == 0 {
		return false
	}
	for _, id := range b.state.SpaceIDs() {
		if b.baseFloor(id) > 0 && b.turn.allowed(id) {
			return true
		}
	}
	return false
}

// baseFloor is the guerrilla count required to place a base in the space,
// or 0 when no base may go there.
func (b *Bot) baseFloor(id int) int {
	p := b.state.Pieces(id)
	if p[game.FrontBase] >= b.state.Rules.BaseLimit(b.state.Space(id)) {
		return 0
	}
	floor := 3
	if p.Cubes() > 0 {
		floor = 4
	}
	if p.Guerrillas() < floor {
		return 0
	}
	return floor
}

// maxTotalRallies bounds how many distinct spaces and tracks the operation
// may touch. Zero means unbounded.
func (b *Bot) maxTotalRallies() int {
	switch {
	case b.turn.MaxSpaces == 1:
		return 1
	case b.turn.FreeOperation, b.state.FrontResources < b.state.Rules.RallyCheapThreshold:
		return 0
	default:
		return 2 * b.state.FrontResources / 3
	}
}

type rallyRun struct {
	b   *Bot
	max int

	touched       map[int]bool
	franceShifted bool

	agitateTarget int
	reserved      int // resources earmarked for the agitation
}

func (r *rallyRun) budgetLeft() bool {
	used := len(r.touched)
	if r.franceShifted {
		used++
	}
	return r.max == 0 || used < r.max
}

// available is the spendable total minus the agitation reserve.
func (r *rallyRun) available() int {
	avail := r.b.funds() - r.reserved
	if avail < 0 {
		return 0
	}
	return avail
}

// payFor charges one resource for rallying in a space, extorting first if
// the till is empty. Returns false when the rally cannot be paid for.
func (r *rallyRun) payFor(id int) bool {
	if r.available() == 0 {
		r.b.tryExtort(nil)
	}
	if r.available() == 0 {
		return false
	}
	r.b.pay(1)
	r.touched[id] = true
	return true
}

func (r *rallyRun) placeBases(withCubes bool) {
	for r.budgetLeft() {
		var candidates []int
		for _, id := range r.b.state.SpaceIDs() {
			if !r.b.turn.allowed(id) || r.touched[id] {
				continue
			}
			hasCubes := r.b.state.Pieces(id).Cubes() > 0
			if hasCubes != withCubes {
				continue
			}
			if r.b.baseFloor(id) > 0 && r.b.state.Available[game.FrontBase] > 0 {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return
		}

		id := TopPriority(r.b.src, candidates,
			Highest[int]{Name: "most guerrillas", Score: func(id int) int {
				return r.b.state.Pieces(id).Guerrillas()
			}})
		if !r.payFor(id) {
			return
		}

		// The base replaces two guerrillas, active ones first.
		p := r.b.state.Pieces(id)
		active := min(2, p[game.ActiveGuerrillas])
		cost := game.Of(game.ActiveGuerrillas, active).
			Add(game.Of(game.HiddenGuerrillas, 2-active))
		r.b.state.RemoveToAvailable(id, cost)
		r.b.state.PlaceFromAvailable(id, game.Of(game.FrontBase, 1))
		r.b.state.Logf("rally places a base in %s", r.b.state.Space(id).Name)
	}
}

func (r *rallyRun) reinforceBases() {
	for r.budgetLeft() {
		var candidates []int
		for _, id := range r.b.state.SpaceIDs() {
			if !r.b.turn.allowed(id) || r.touched[id] {
				continue
			}
			p := r.b.state.Pieces(id)
			if p[game.FrontBase] > 0 && p[game.HiddenGuerrillas] < r.b.protectedHidden(id) {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return
		}

		id := TopPriority(r.b.src, candidates,
			Criterion[int]{Name: "in country", Match: func(id int) bool {
				return r.b.state.Space(id).Country
			}},
			Criterion[int]{Name: "cubes present", Match: func(id int) bool {
				return r.b.state.Pieces(id).Cubes() > 0
			}},
			Criterion[int]{Name: "populated", Match: func(id int) bool {
				return r.b.state.Space(id).Population > 0
			}},
			Lowest[int]{Name: "fewest hidden", Score: func(id int) int {
				return r.b.state.Pieces(id)[game.HiddenGuerrillas]
			}},
		)
		if !r.payFor(id) {
			return
		}
		need := r.b.protectedHidden(id) - r.b.state.Pieces(id)[game.HiddenGuerrillas]
		r.b.placeGuerrillas(id, need)
		r.b.state.Logf("rally reinforces the base in %s", r.b.state.Space(id).Name)
	}
}

func (r *rallyRun) shiftFranceTrack() {
	if !r.budgetLeft() || r.b.state.FranceTrack >= r.b.state.Rules.FranceTrackMax {
		return
	}
	if r.available() == 0 {
		r.b.tryExtort(nil)
	}
	if r.available() == 0 {
		return
	}
	r.b.pay(1)
	r.b.state.ShiftFranceTrack(1)
	r.franceShifted = true
	r.b.state.Logf("rally shifts the France track to %d", r.b.state.FranceTrack)
}

func (r *rallyRun) coverSupportSectors() {
	for r.budgetLeft() {
		var candidates []int
		for _, id := range r.b.state.SpaceIDs() {
			if !r.b.turn.allowed(id) || r.touched[id] || r.b.state.Space(id).Country {
				continue
			}
			if r.b.state.Spaces[id].Support == game.Support &&
				r.b.state.Pieces(id).Guerrillas() == 0 {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return
		}
		id := TopPriority(r.b.src, candidates,
			Highest[int]{Name: "most population", Score: func(id int) int {
				return r.b.state.Space(id).Population
			}})
		if !r.payFor(id) {
			return
		}
		r.b.placeGuerrillas(id, 1)
		r.b.state.Logf("rally covers %s", r.b.state.Space(id).Name)
	}
}

// pickAgitateTarget selects at most one space to agitate at the end of the
// operation and reserves the resources to pay for it. minPop 2 is the first
// try; minPop 1 the late fallback.
func (r *rallyRun) pickAgitateTarget(minPop int) {
	if r.agitateTarget >= 0 {
		return
	}
	var candidates []int
	for _, id := range r.b.state.SpaceIDs() {
		if !r.b.turn.allowed(id) {
			continue
		}
		sp := r.b.state.Space(id)
		st := r.b.state.Spaces[id]
		if sp.Population < minPop || st.Support == game.Oppose {
			continue
		}
		if r.b.state.Control(id) != game.FrontControl {
			continue
		}
		cost := st.Terror + 1
		extra := 0
		if !r.touched[id] {
			extra = 1 // must rally there first
		}
		if r.available() >= cost+extra {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return
	}

	id := TopPriority(r.b.src, candidates,
		Highest[int]{Name: "most population", Score: func(id int) int {
			return r.b.state.Space(id).Population
		}},
		Lowest[int]{Name: "cheapest", Score: func(id int) int {
			return r.b.state.Spaces[id].Terror
		}},
	)

	if !r.touched[id] {
		if !r.budgetLeft() || !r.payFor(id) {
			return
		}
		r.b.placeGuerrillas(id, 1)
	}
	r.agitateTarget = id
	r.reserved = r.b.state.Spaces[id].Terror + 1
}

func (r *rallyRun) reinforceKeySpaces() {
	done := 0
	for r.budgetLeft() && done < 2 {
		var candidates []int
		for _, id := range r.b.state.SpaceIDs() {
			if !r.b.turn.allowed(id) || r.touched[id] {
				continue
			}
			if r.b.state.Space(id).Population >= 2 || r.b.nextToBase(id) {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return
		}
		id := TopPriority(r.b.src, candidates,
			Highest[int]{Name: "most population", Score: func(id int) int {
				return r.b.state.Space(id).Population
			}})
		if !r.payFor(id) {
			return
		}
		if r.b.placeGuerrillas(id, 1) == 0 {
			return
		}
		r.b.state.Logf("rally reinforces %s", r.b.state.Space(id).Name)
		done++
	}
}

func (r *rallyRun) spreadFromGuerrillas() {
	done := 0
	for r.budgetLeft() && done < 2 {
		var candidates []int
		for _, id := range r.b.state.SpaceIDs() {
			if !r.b.turn.allowed(id) || r.touched[id] {
				continue
			}
			p := r.b.state.Pieces(id)
			if p.Bases() == 0 && p.Guerrillas() >= 1 {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return
		}
		id := TopPriority(r.b.src, candidates,
			Highest[int]{Name: "most guerrillas", Score: func(id int) int {
				return r.b.state.Pieces(id).Guerrillas()
			}})
		if !r.payFor(id) {
			return
		}
		if r.b.placeGuerrillas(id, 1) == 0 {
			return
		}
		r.b.state.Logf("rally adds a guerrilla in %s", r.b.state.Space(id).Name)
		done++
	}
}

// agitate spends the reserve: clear all terror and push support one level
// toward opposition.
func (r *rallyRun) agitate() {
	if r.agitateTarget < 0 {
		return
	}
	id := r.agitateTarget
	cost := r.b.state.Spaces[id].Terror + 1
	r.reserved = 0
	if r.b.funds() < cost {
		return
	}
	r.b.pay(cost)
	r.b.state.RemoveAllTerror(id)
	r.b.state.ShiftSupport(id, -1)
	r.b.state.Logf("agitation in %s", r.b.state.Space(id).Name)
}

// nextToBase reports whether a space is adjacent to a front base.
func (b *Bot) nextToBase(id int) bool {
	for _, adj := range b.state.Adjacents(id) {
		if b.state.Pieces(adj)[game.FrontBase] > 0 {
			return true
		}
	}
	return false
}

// placeGuerrillas puts up to n hidden guerrillas into a space, the available
// pool first, then active guerrillas pulled from elsewhere on the map under
// the usual protection minimums. Returns how many actually arrived.
func (b *Bot) placeGuerrillas(id, n int) int {
	placed := 0

	fromPool := min(n, b.state.Available[game.HiddenGuerrillas])
	if fromPool > 0 {
		b.state.PlaceFromAvailable(id, game.Of(game.HiddenGuerrillas, fromPool))
		placed += fromPool
	}

	for placed < n {
		var donors []int
		for _, donor := range b.state.SpaceIDs() {
			if donor == id {
				continue
			}
			m := b.movableGuerrillas(donor)
			if min(m.active, m.total) > 0 && b.state.Pieces(donor).Guerrillas() > 2 {
				donors = append(donors, donor)
			}
		}
		if len(donors) == 0 {
			break
		}
		donor := TopPriority(b.src, donors,
			Highest[int]{Name: "most active", Score: func(d int) int {
				return b.state.Pieces(d)[game.ActiveGuerrillas]
			}})
		b.state.Redeploy(donor, id, game.Of(game.ActiveGuerrillas, 1), false)
		placed++
	}
	return placed
}
