package game

// Queries. Read-only helpers the bot uses to enumerate and inspect spaces.

// SpaceIDs returns the ids of every space on the map.
func (g *GameState) SpaceIDs() []int {
	ids := make([]int, len(g.Spaces))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// SectorIDs returns every non-country space.
func (g *GameState) SectorIDs() []int {
	var ids []int
	for _, id := range g.SpaceIDs() {
		if !g.Map.Spaces[id].Country {
			ids = append(ids, id)
		}
	}
	return ids
}

// WilayaIDs returns the spaces of one wilaya.
func (g *GameState) WilayaIDs(wilaya int) []int {
	return g.Map.Wilayas[wilaya]
}

func (g *GameState) Space(id int) *Space {
	return g.Map.Spaces[id]
}

func (g *GameState) Pieces(id int) PieceCount {
	return g.Spaces[id].Pieces
}

func (g *GameState) AreAdjacent(id1, id2 int) bool {
	return contains(g.Map.Spaces[id1].AdjacentIDs, id2)
}

func (g *GameState) Adjacents(id int) []int {
	return g.Map.Spaces[id].AdjacentIDs
}

// TotalOnMap sums a piece kind across all spaces.
func (g *GameState) TotalOnMap(k Kind) int {
	total := 0
	for i := range g.Spaces {
		total += g.Spaces[i].Pieces[k]
	}
	return total
}

// TotalTerror counts terror markers on the map.
func (g *GameState) TotalTerror() int {
	total := 0
	for i := range g.Spaces {
		total += g.Spaces[i].Terror
	}
	return total
}

func (g *GameState) IsCapability(c Capability) bool {
	return g.Capabilities[c]
}

func (g *GameState) IsMomentum(m Momentum) bool {
	return g.Momentum[m]
}
