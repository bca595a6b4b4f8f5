package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteTurns(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	err = w.WriteTurns([]TurnMetric{
		{Turn: 1, Card: "Arms Shipment", Action: "event", GovScore: 3, OppScore: 1,
			Resources: 6, Duration: 2 * time.Millisecond},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one timestamped run directory")

	f, err := os.Open(filepath.Join(dir, entries[0].Name(), "turns.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t,
		[]string{"turn", "card", "action", "gov_score", "opp_score", "resources", "duration"},
		rows[0])
	require.Equal(t, []string{"1", "Arms Shipment", "event", "3", "1", "6", "2ms"}, rows[1])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Add(TurnMetric{Turn: 1})
	c.Add(TurnMetric{Turn: 2})
	require.Len(t, c.Complete(), 2)

	require.Nil(t, NewDummyCollector().Complete())
}
