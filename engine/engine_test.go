package engine

import (
	"testing"

	"maquis/bot"
	"maquis/game"
	"maquis/metrics"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	state := game.NewGameState(game.CreateMap(), game.NewStandardRules())
	b := bot.New(state)

	govTurns := 0
	e := New(state, b,
		WithGovernment(func(g *game.GameState) {
			govTurns++
			g.AddFrontResources(-1)
		}),
		WithMetrics(metrics.NewCollector()),
	)

	arms := game.Deck()[1] // Arms Shipment, always playable
	ledger := e.Run([]*game.Card{arms, arms})

	require.Equal(t, []game.Action{game.Event, game.Event}, ledger)
	require.Equal(t, 2, govTurns, "the government moves after every bot turn")

	turns := e.Metrics()
	require.Len(t, turns, 2)
	require.Equal(t, 1, turns[0].Turn)
	require.Equal(t, "Arms Shipment", turns[0].Card)
	require.Equal(t, game.Event.String(), turns[0].Action)
	require.Equal(t, 6, turns[0].Resources)
	require.Equal(t, 11, turns[1].Resources,
		"resources carry over minus the government's take")
}

func TestRunWithoutOptions(t *testing.T) {
	state := game.NewGameState(game.CreateMap(), game.NewStandardRules())
	e := New(state, bot.New(state))

	ledger := e.Run(nil)
	require.Empty(t, ledger)
	require.Empty(t, e.Metrics(), "the dummy collector keeps nothing")
}
