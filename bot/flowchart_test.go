package bot

import (
	"testing"

	"maquis/game"

	"github.com/stretchr/testify/require"
)

func midwarState() *game.GameState {
	g := game.NewGameState(game.CreateMap(), game.NewStandardRules())
	g.FrontResources = 9
	g.Spaces[game.Medea].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 2))
	g.Spaces[game.Setif].Pieces = game.Of(game.HiddenGuerrillas, 3)
	g.Spaces[game.Algiers].Pieces = game.Of(game.FrenchTroops, 2).
		Add(game.Of(game.FrenchPolice, 1))
	g.SetSupport(game.Algiers, game.Support)
	g.Spaces[game.Oran].Pieces = game.Of(game.FrenchPolice, 1)
	g.Available = game.Of(game.HiddenGuerrillas, 6).Add(game.Of(game.FrontBase, 2))
	return g
}

func TestActIsDeterministic(t *testing.T) {
	draws := []int{1, 0, 1}

	run := func() (game.Action, *game.GameState) {
		b := New(midwarState(), WithSource(&script{draws: draws}))
		return b.Act(), b.State()
	}

	a1, s1 := run()
	a2, s2 := run()

	require.Equal(t, a1, a2)
	require.Equal(t, s1, s2, "same position and same draws must replay identically")
	require.NotEqual(t, game.Pass, a1)
}

func TestActPassesWithNothingToDo(t *testing.T) {
	g := freshState()
	b := New(g, WithSource(&script{}))

	action := b.ActConstrained(1, nil, false)
	require.Equal(t, game.Pass, action)
	require.Equal(t, 0, g.FrontResources)
}

func TestActPlaysAMarkedEvent(t *testing.T) {
	g := freshState()
	g.FrontResources = 2
	g.Card = game.Deck()[1] // Arms Shipment
	b := New(g, WithSource(&script{}))

	action := b.Act()
	require.Equal(t, game.Event, action)
	require.Equal(t, 8, b.State().FrontResources)
}

func TestActPrefersTerrorOverAWeakerEvent(t *testing.T) {
	g := freshState()
	g.FrontResources = 2
	g.SetSupport(game.Algiers, game.Support)
	g.Spaces[game.Algiers].Pieces = game.Of(game.HiddenGuerrillas, 2)
	g.Card = game.Deck()[0] // UN Debate: helps, but not against the score
	b := New(g, WithSource(&script{}))

	action := b.Act()
	require.Equal(t, game.FullOperationWithSpecialActivity, action,
		"terror plus the closing extortion sweep")

	s := b.State()
	require.Equal(t, game.Neutral, s.Spaces[game.Algiers].Support)
	require.Equal(t, 1, s.Spaces[game.Algiers].Terror)
	require.Equal(t, 0, s.FranceTrack, "the event side went unplayed")
}

func TestActRalliesWhenABaseIsExposed(t *testing.T) {
	g := freshState()
	g.FrontResources = 1
	g.Spaces[game.Batna].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.ActiveGuerrillas, 1))
	g.Available = game.Of(game.HiddenGuerrillas, 1)
	b := New(g, WithSource(&script{draws: []int{0}}))

	action := b.Act()
	require.Equal(t, game.FullOperation, action)
	require.Equal(t, 1, b.State().Pieces(game.Batna)[game.HiddenGuerrillas],
		"the exposed base got its screen back")
	require.True(t, testBot(b.State()).basesProtected())
}

func TestActSecondEligibleLooksPastAnExposedBase(t *testing.T) {
	g := freshState()
	g.FrontResources = 1
	g.SecondEligible = true
	g.FirstNext = true
	g.Spaces[game.Batna].Pieces = game.Of(game.FrontBase, 1)
	g.Card = game.Deck()[1] // Arms Shipment
	b := New(g, WithSource(&script{}))

	action := b.Act()
	require.Equal(t, game.Event, action,
		"guaranteed the first slot next round, the event is worth the exposure")
}

func TestActConstrainedLimitedOperation(t *testing.T) {
	g := freshState()
	g.FrontResources = 1
	g.Spaces[game.Setif].Pieces = game.Of(game.HiddenGuerrillas, 3)
	g.Available = game.Of(game.FrontBase, 1)
	b := New(g, WithSource(&script{}))

	action := b.ActConstrained(1, nil, false)
	require.Equal(t, game.LimitedOperation, action)
	require.Equal(t, 1, b.State().Pieces(game.Setif)[game.FrontBase])
}
