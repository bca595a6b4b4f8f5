package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceCountAlgebra(t *testing.T) {
	t.Run("adding and subtracting", func(t *testing.T) {
		p := Of(HiddenGuerrillas, 3).Add(Of(FrenchPolice, 2))

		p = p.Add(Of(HiddenGuerrillas, 1))
		require.Equal(t, 4, p[HiddenGuerrillas])

		p = p.Sub(Of(FrenchPolice, 2))
		require.Equal(t, 0, p[FrenchPolice])
		require.Equal(t, 4, p.Total())
	})

	t.Run("subtracting below zero panics", func(t *testing.T) {
		p := Of(FrontBase, 1)
		require.Panics(t, func() {
			p.Sub(Of(FrontBase, 2))
		}, "Removing pieces a count does not hold should panic")
	})

	t.Run("only keeps the named kinds", func(t *testing.T) {
		p := Of(HiddenGuerrillas, 2).
			Add(Of(ActiveGuerrillas, 1)).
			Add(Of(FrenchTroops, 3))

		got := p.Only(HiddenGuerrillas, ActiveGuerrillas)

		require.Equal(t, 3, got.Guerrillas())
		require.Equal(t, 0, got.Cubes())
	})

	t.Run("aggregates", func(t *testing.T) {
		p := Of(FrenchTroops, 1).
			Add(Of(AlgerianPolice, 2)).
			Add(Of(ActiveGuerrillas, 2)).
			Add(Of(FrontBase, 1))

		require.Equal(t, 3, p.Cubes())
		require.Equal(t, 2, p.Guerrillas())
		require.Equal(t, 1, p.Bases())
		require.Equal(t, 3, p.GovPieces())
		require.Equal(t, 3, p.FrontPieces())
	})
}
