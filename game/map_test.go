package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateMap(t *testing.T) {
	m := CreateMap()

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for _, s := range m.Spaces {
			for _, adj := range s.AdjacentIDs {
				require.Contains(t, m.Spaces[adj].AdjacentIDs, s.ID,
					"%s borders %s but not the other way round", s.Name, m.Spaces[adj].Name)
			}
		}
	})

	t.Run("wilayas partition the map", func(t *testing.T) {
		seen := map[int]bool{}
		for _, ids := range m.Wilayas {
			for _, id := range ids {
				require.False(t, seen[id], "space %d in two wilayas", id)
				seen[id] = true
			}
		}
		require.Len(t, seen, len(m.Spaces))
	})

	t.Run("countries sit outside the wilayas", func(t *testing.T) {
		for _, s := range m.Spaces {
			if s.Country {
				require.Equal(t, 0, s.Wilaya)
			} else {
				require.NotEqual(t, 0, s.Wilaya)
			}
		}
	})

	t.Run("deterministic adjacency order", func(t *testing.T) {
		other := CreateMap()
		for i, s := range m.Spaces {
			require.Equal(t, s.AdjacentIDs, other.Spaces[i].AdjacentIDs)
		}
	})
}
