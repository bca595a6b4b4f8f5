package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanPlayEvent(t *testing.T) {
	g := newTestState()

	require.False(t, g.CanPlayEvent(), "no card revealed")

	g.Card = &Card{Name: "unplayable"}
	require.False(t, g.CanPlayEvent(), "no event side for the insurgents")

	g.Card = &Card{
		Name:     "conditional",
		Playable: func(g *GameState) bool { return g.FrontResources > 0 },
		Effect:   func(*GameState) {},
	}
	require.False(t, g.CanPlayEvent())
	g.FrontResources = 1
	require.True(t, g.CanPlayEvent())
}

func TestDeckEffects(t *testing.T) {
	byName := func(name string) *Card {
		for _, c := range Deck() {
			if c.Name == name {
				return c
			}
		}
		t.Fatalf("no card named %q", name)
		return nil
	}

	t.Run("arms shipment funds the front", func(t *testing.T) {
		g := newTestState()
		c := byName("Arms Shipment")
		require.True(t, c.FrontMarked)
		require.True(t, c.Playable(g))
		c.Effect(g)
		require.Equal(t, 6, g.FrontResources)
	})

	t.Run("cross-border camp needs a spare base", func(t *testing.T) {
		g := newTestState()
		c := byName("Cross-border Camp")
		require.False(t, c.Playable(g))

		g.Available = Of(FrontBase, 1)
		require.True(t, c.Playable(g))
		c.Effect(g)
		require.Equal(t, 1, g.Pieces(Morocco)[FrontBase],
			"the base goes to the first country with room")
	})

	t.Run("harki defections remove cubes for good", func(t *testing.T) {
		g := newTestState()
		c := byName("Harki Defections")
		require.False(t, c.Playable(g))

		g.Spaces[Constantine].Pieces = Of(AlgerianPolice, 1).Add(Of(AlgerianTroops, 2))
		require.True(t, c.Playable(g))
		c.Effect(g)

		require.Equal(t, 2, g.OutOfPlay.Cubes(), "at most two cubes desert")
		require.Equal(t, 1, g.Pieces(Constantine)[AlgerianTroops],
			"police desert before troops")
		require.Equal(t, 0, g.Available.Cubes(), "deserters never come back")
	})

	t.Run("night raids place a lasting capability", func(t *testing.T) {
		g := newTestState()
		c := byName("Night Raids")
		require.True(t, c.CapabilityCard)
		require.True(t, c.Playable(g))
		c.Effect(g)
		require.True(t, g.IsCapability(CapQuietAmbush))
		require.False(t, c.Playable(g), "a capability is played once")
	})
}
