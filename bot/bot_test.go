package bot

import (
	"testing"

	"maquis/game"

	"github.com/stretchr/testify/require"
)

// script is a Source replaying a fixed list of draws, reduced modulo n so a
// test stays legal whatever range the bot asks for. An exhausted script keeps
// returning 0.
type script struct {
	draws []int
	next  int
}

func (s *script) Intn(n int) int {
	if s.next >= len(s.draws) {
		return 0
	}
	d := s.draws[s.next] % n
	s.next++
	return d
}

func freshState() *game.GameState {
	return game.NewGameState(game.CreateMap(), game.NewStandardRules())
}

// testBot builds a bot over a fresh turn scratch so operation methods can be
// driven directly, outside a full Act pass.
func testBot(g *game.GameState, draws ...int) *Bot {
	b := New(g, WithSource(&script{draws: draws}))
	b.turn = newTurnState(0, nil, false)
	return b
}

func TestMovableGuerrillas(t *testing.T) {
	t.Run("a populated base keeps one guerrilla and one hidden", func(t *testing.T) {
		g := freshState()
		g.Spaces[game.Medea].Pieces = game.Of(game.FrontBase, 1).
			Add(game.Of(game.HiddenGuerrillas, 3))
		b := testBot(g)

		m := b.movableGuerrillas(game.Medea)
		require.Equal(t, 2, m.total, "one guerrilla must stay beside the base")
		require.Equal(t, 2, m.hidden)
	})

	t.Run("a support space keeps its last guerrilla", func(t *testing.T) {
		g := freshState()
		g.SetSupport(game.Tlemcen, game.Support)
		g.Spaces[game.Tlemcen].Pieces = game.Of(game.HiddenGuerrillas, 2)
		b := testBot(g)

		m := b.movableGuerrillas(game.Tlemcen)
		require.Equal(t, 1, m.total)
	})

	t.Run("departure never hands over a populated space", func(t *testing.T) {
		g := freshState()
		g.Spaces[game.Medea].Pieces = game.Of(game.HiddenGuerrillas, 2).
			Add(game.Of(game.FrenchTroops, 2))
		b := testBot(g)

		m := b.movableGuerrillas(game.Medea)
		require.Equal(t, 0, m.total, "leaving would give the government control")
	})

	t.Run("guerrillas that marched in cannot march again", func(t *testing.T) {
		g := freshState()
		g.Spaces[game.Medea].Pieces = game.Of(game.HiddenGuerrillas, 3)
		b := testBot(g)
		b.turn.Moving[game.Medea] = game.Of(game.HiddenGuerrillas, 2)

		m := b.movableGuerrillas(game.Medea)
		require.Equal(t, 1, m.total)
		require.Equal(t, 1, m.hidden)
	})
}

func TestSafelyFlippable(t *testing.T) {
	g := freshState()
	g.Spaces[game.Medea].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 1))
	g.Spaces[game.Setif].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 2))
	g.Spaces[game.Aumale].Pieces = game.Of(game.HiddenGuerrillas, 1)
	b := testBot(g)

	require.False(t, b.safelyFlippable(game.Medea), "the base would lose its screen")
	require.True(t, b.safelyFlippable(game.Setif))
	require.True(t, b.safelyFlippable(game.Aumale))
	require.False(t, b.safelyFlippable(game.Batna), "no hidden guerrilla to flip")
}

func TestBasesProtected(t *testing.T) {
	g := freshState()
	b := testBot(g)
	require.True(t, b.basesProtected(), "no bases means nothing exposed")

	g.Spaces[game.Medea].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 1))
	require.False(t, b.basesProtected(), "a populated base needs two hidden guerrillas")

	g.Spaces[game.Medea].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 2))
	require.True(t, b.basesProtected())

	g.Spaces[game.Batna].Pieces = game.Of(game.FrontBase, 1).
		Add(game.Of(game.HiddenGuerrillas, 1))
	require.True(t, b.basesProtected(), "an unpopulated base needs only one")
}

func TestFinishOp(t *testing.T) {
	g := freshState()
	b := testBot(g)

	require.Equal(t, game.FullOperation, b.finishOp(3))
	require.Equal(t, game.FullOperation, b.finishOp(1),
		"one space is still a full operation without a limited slot")

	b.turn.MaxSpaces = 1
	require.Equal(t, game.LimitedOperation, b.finishOp(1))

	b.turn.MaxSpaces = 0
	g.SecondEligible = true
	require.Equal(t, game.LimitedOperation, b.finishOp(1))

	b.turn.takeSpecial()
	require.Equal(t, game.FullOperationWithSpecialActivity, b.finishOp(1))
}

func TestTurnState(t *testing.T) {
	t.Run("restricted spaces", func(t *testing.T) {
		tn := newTurnState(0, []int{game.Setif}, false)
		require.True(t, tn.allowed(game.Setif))
		require.False(t, tn.allowed(game.Medea))

		open := newTurnState(0, nil, false)
		require.True(t, open.allowed(game.Medea))
	})

	t.Run("space budget", func(t *testing.T) {
		tn := newTurnState(2, nil, false)
		require.True(t, tn.withinBudget(1))
		require.False(t, tn.withinBudget(2))

		unlimited := newTurnState(0, nil, false)
		require.True(t, unlimited.withinBudget(50))
	})

	t.Run("special activity is once per turn and gated", func(t *testing.T) {
		tn := newTurnState(0, nil, false)
		tn.takeSpecial()
		require.True(t, tn.SpecialTaken)

		tn.SpecialAllowed = false
		require.Panics(t, func() { tn.takeSpecial() })
	})

	t.Run("clone does not share the maps", func(t *testing.T) {
		tn := newTurnState(0, nil, false)
		c := tn.clone()
		c.Paid[game.Medea] = true
		c.Moving[game.Medea] = game.Of(game.HiddenGuerrillas, 1)

		require.Empty(t, tn.Paid)
		require.Empty(t, tn.Moving)
	})
}
