package bot

import "maquis/game"

// terror runs a full Terror pass: intimidate populated spaces to knock them
// off Support, one resource and one activated guerrilla per space. Returns
// the spaces touched and whether anything happened.
func (b *Bot) terror() (int, bool) {
	free := b.state.IsCapability(game.CapFreeCityTerror)

	var candidates []int
	for _, id := range b.state.SpaceIDs() {
		if !b.turn.allowed(id) {
			continue
		}
		sp := b.state.Space(id)
		if sp.Population == 0 || !b.safelyFlippable(id) {
			continue
		}
		st := b.state.Spaces[id]
		switch {
		case st.Support == game.Support:
			candidates = append(candidates, id)
		case b.state.FinalCampaign && st.Support == game.Neutral && st.Terror == 0:
			// Late war the bot also terrorizes quiet neutral spaces to deny
			// the government a place to train.
			candidates = append(candidates, id)
		}
	}

	spaces := 0
	for len(candidates) > 0 && b.turn.withinBudget(spaces) {
		id := TopPriority(b.src, candidates,
			Criterion[int]{Name: "at support", Match: func(id int) bool {
				return b.state.Spaces[id].Support == game.Support
			}},
			Criterion[int]{Name: "neutral in final campaign", Match: func(id int) bool {
				return b.state.FinalCampaign && b.state.TerrorPool > 0 &&
					b.state.Spaces[id].Support == game.Neutral
			}},
			Highest[int]{Name: "most population", Score: func(id int) int {
				return b.state.Space(id).Population
			}},
		)

		// Extorting for funds may have burned this space's hidden guerrilla.
		if !b.safelyFlippable(id) {
			candidates = removeID(candidates, id)
			continue
		}

		freeHere := free && b.state.Space(id).Terrain == game.City
		if !freeHere {
			if b.funds() == 0 {
				b.tryExtort(map[int]int{id: 1})
			}
			if b.funds() == 0 {
				break
			}
			b.pay(1)
		}

		b.state.ActivateGuerrillas(id, 1)
		if b.state.Spaces[id].Terror == 0 {
			b.state.AddTerror(id)
		}
		if !b.state.IsMomentum(game.MomSuppressTerrorShift) &&
			b.state.Spaces[id].Support == game.Support {
			b.state.SetSupport(id, game.Neutral)
		}
		b.state.Logf("terror in %s", b.state.Space(id).Name)

		spaces++
		candidates = removeID(candidates, id)
	}

	if spaces > 0 {
		b.trySubvert()
		b.tryExtort(nil)
	}
	return spaces, spaces > 0
}
