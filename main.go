package main

import (
	"os"

	"maquis/bot"
	"maquis/engine"
	"maquis/game"
	"maquis/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	state := setupDemo()
	b := bot.New(state, bot.WithLogger(log.Logger))
	collector := metrics.NewCollector()
	e := engine.New(state, b,
		engine.WithMetrics(collector),
		engine.WithGovernment(governmentScript()),
	)

	ledger := e.Run(game.Deck())

	final := e.State
	log.Info().
		Int("government", final.GovernmentScore()).
		Int("front", final.FrontScore()).
		Int("resources", final.FrontResources).
		Msgf("demo over after %d turns", len(ledger))

	w, err := metrics.NewWriter("runs")
	if err != nil {
		log.Error().Err(err).Msg("metrics writer")
		return
	}
	if err := w.WriteTurns(e.Metrics()); err != nil {
		log.Error().Err(err).Msg("write turns")
	}
}

// setupDemo deals out a small mid-war position.
func setupDemo() *game.GameState {
	g := game.NewGameState(game.CreateMap(), game.NewStandardRules())

	g.FrontResources = 9
	g.GovResources = 20
	g.Commitment = 4
	g.Available = game.Of(game.HiddenGuerrillas, 10).
		Add(game.Of(game.FrontBase, 4)).
		Add(game.Of(game.FrenchPolice, 3)).
		Add(game.Of(game.GovBase, 2))

	place := func(id int, pc game.PieceCount, support game.SupportLevel) {
		g.Spaces[id].Pieces = pc
		g.Spaces[id].Support = support
	}

	place(game.Algiers,
		game.Of(game.FrenchPolice, 2).Add(game.Of(game.HiddenGuerrillas, 1)),
		game.Support)
	place(game.Oran, game.Of(game.FrenchPolice, 1).Add(game.Of(game.AlgerianPolice, 1)),
		game.Support)
	place(game.Constantine, game.Of(game.AlgerianPolice, 2), game.Neutral)
	place(game.Medea,
		game.Of(game.HiddenGuerrillas, 3).Add(game.Of(game.FrontBase, 1)),
		game.Oppose)
	place(game.Setif,
		game.Of(game.HiddenGuerrillas, 2).Add(game.Of(game.AlgerianTroops, 1)),
		game.Neutral)
	place(game.Orleansville,
		game.Of(game.FrenchTroops, 2).Add(game.Of(game.AlgerianTroops, 1)),
		game.Neutral)
	place(game.Tunisia,
		game.Of(game.HiddenGuerrillas, 4).Add(game.Of(game.FrontBase, 1)),
		game.Neutral)

	return g
}

// governmentScript is a crude stand-in opponent: it just drip-feeds police
// into the biggest city it still holds.
func governmentScript() engine.GovernmentTurn {
	return func(g *game.GameState) {
		if g.Available[game.FrenchPolice] == 0 {
			return
		}
		best, bestPop := -1, -1
		for _, id := range g.SpaceIDs() {
			sp := g.Space(id)
			if sp.Terrain == game.City && g.Control(id) != game.FrontControl &&
				sp.Population > bestPop {
				best, bestPop = id, sp.Population
			}
		}
		if best >= 0 {
			g.PlaceFromAvailable(best, game.Of(game.FrenchPolice, 1))
		}
	}
}
