package bot

import (
	"testing"

	"maquis/game"

	"github.com/stretchr/testify/require"
)

func TestSpeculateLeavesNoTrace(t *testing.T) {
	g := freshState()
	g.FrontResources = 4
	g.Spaces[game.Medea].Pieces = game.Of(game.HiddenGuerrillas, 2)
	g.Logf("setup")
	b := testBot(g)

	snapState := b.state.Copy()
	snapTurn := b.turn.clone()

	tr := b.speculate(func(bb *Bot) bool {
		bb.state.ActivateGuerrillas(game.Medea, 1)
		bb.state.AddFrontResources(-4)
		bb.state.Logf("trial move")
		bb.turn.takeSpecial()
		bb.turn.Paid[game.Medea] = true
		return false
	})

	require.False(t, tr.ok)
	require.Equal(t, snapState, b.state, "a dropped trial must leave the live state untouched")
	require.Equal(t, snapTurn, b.turn, "a dropped trial must leave the turn scratch untouched")
	require.Equal(t, 0, tr.state.FrontResources, "the trial state keeps the speculative changes")
	require.True(t, tr.turn.SpecialTaken)
}

func TestCommitAdoptsTheTrial(t *testing.T) {
	g := freshState()
	g.FrontResources = 2
	g.Spaces[game.Medea].Pieces = game.Of(game.HiddenGuerrillas, 2)
	g.Logf("setup")
	b := testBot(g)

	tr := b.speculate(func(bb *Bot) bool {
		bb.state.ActivateGuerrillas(game.Medea, 1)
		bb.state.Logf("trial move")
		bb.turn.takeSpecial()
		return true
	})
	require.True(t, tr.ok)

	b.commit(tr)
	require.Equal(t, 1, b.state.Pieces(game.Medea)[game.ActiveGuerrillas])
	require.True(t, b.turn.SpecialTaken)
	require.Equal(t, []string{"setup", "trial move"}, b.state.Log,
		"the committed state carries the trial's action log")
}
