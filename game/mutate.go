package game

import "fmt"

// Mutators. These are the only ways the bot changes the game state. Asking
// a pool or a space for pieces it does not hold panics: that is a logic
// defect in the caller, not a runtime condition.

// PlaceFromAvailable moves pieces from the available pool into a space.
func (g *GameState) PlaceFromAvailable(id int, pc PieceCount) {
	g.Available = g.Available.Sub(pc)
	g.Spaces[id].Pieces = g.Spaces[id].Pieces.Add(pc)
}

// RemoveToAvailable moves pieces from a space back to the available pool.
func (g *GameState) RemoveToAvailable(id int, pc PieceCount) {
	g.Spaces[id].Pieces = g.Spaces[id].Pieces.Sub(pc)
	g.Available = g.Available.Add(pc)
}

// RemoveToCasualties moves pieces from a space to the casualties pool.
func (g *GameState) RemoveToCasualties(id int, pc PieceCount) {
	g.Spaces[id].Pieces = g.Spaces[id].Pieces.Sub(pc)
	g.Casualties = g.Casualties.Add(pc)
}

// RemoveToOutOfPlay removes pieces from a space permanently.
func (g *GameState) RemoveToOutOfPlay(id int, pc PieceCount) {
	g.Spaces[id].Pieces = g.Spaces[id].Pieces.Sub(pc)
	g.OutOfPlay = g.OutOfPlay.Add(pc)
}

// Redeploy moves pieces between two spaces. When activate is set, hidden
// guerrillas in the moving group arrive active.
func (g *GameState) Redeploy(from, to int, pc PieceCount, activate bool) {
	g.Spaces[from].Pieces = g.Spaces[from].Pieces.Sub(pc)
	if activate {
		pc[ActiveGuerrillas] += pc[HiddenGuerrillas]
		pc[HiddenGuerrillas] = 0
	}
	g.Spaces[to].Pieces = g.Spaces[to].Pieces.Add(pc)
}

// ActivateGuerrillas flips n hidden guerrillas active in a space.
func (g *GameState) ActivateGuerrillas(id int, n int) {
	s := &g.Spaces[id]
	if s.Pieces[HiddenGuerrillas] < n {
		panic(fmt.Sprintf("space %d has %d hidden guerrillas, cannot activate %d",
			id, s.Pieces[HiddenGuerrillas], n))
	}
	s.Pieces[HiddenGuerrillas] -= n
	s.Pieces[ActiveGuerrillas] += n
}

// HideGuerrillas flips n active guerrillas back to hidden.
func (g *GameState) HideGuerrillas(id int, n int) {
	s := &g.Spaces[id]
	if s.Pieces[ActiveGuerrillas] < n {
		panic(fmt.Sprintf("space %d has %d active guerrillas, cannot hide %d",
			id, s.Pieces[ActiveGuerrillas], n))
	}
	s.Pieces[ActiveGuerrillas] -= n
	s.Pieces[HiddenGuerrillas] += n
}

// AddTerror places a terror marker from the supply if one is available.
func (g *GameState) AddTerror(id int) {
	if g.TerrorPool == 0 {
		return
	}
	g.TerrorPool--
	g.Spaces[id].Terror++
}

// RemoveAllTerror returns every terror marker in a space to the supply.
func (g *GameState) RemoveAllTerror(id int) {
	g.TerrorPool += g.Spaces[id].Terror
	g.Spaces[id].Terror = 0
}

func (g *GameState) SetSupport(id int, level SupportLevel) {
	g.Spaces[id].Support = level
}

// ShiftSupport moves a space's support by delta levels, clamped to the
// Oppose..Support range. Positive delta moves toward Support.
func (g *GameState) ShiftSupport(id int, delta int) {
	level := int(g.Spaces[id].Support) + delta
	if level < int(Oppose) {
		level = int(Oppose)
	}
	if level > int(Support) {
		level = int(Support)
	}
	g.Spaces[id].Support = SupportLevel(level)
}

func (g *GameState) ShiftFranceTrack(delta int) {
	g.FranceTrack = clamp(g.FranceTrack+delta, 0, g.Rules.FranceTrackMax)
}

func (g *GameState) ShiftBorderZone(delta int) {
	g.BorderZone = clamp(g.BorderZone+delta, 0, g.Rules.BorderZoneMax)
}

func (g *GameState) AddFrontResources(delta int) {
	g.FrontResources = clamp(g.FrontResources+delta, 0, 99)
}

func (g *GameState) AddGovResources(delta int) {
	g.GovResources = clamp(g.GovResources+delta, 0, 99)
}

func (g *GameState) PlayCapability(c Capability) {
	g.Capabilities[c] = true
}

func (g *GameState) PlayMomentum(m Momentum) {
	g.Momentum[m] = true
}

// Logf appends a formatted line to the in-game action log.
func (g *GameState) Logf(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
