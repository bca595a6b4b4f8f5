package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	// Subfolder named by current timestamp so runs never collide
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteTurns(turns []TurnMetric) error {
	path := filepath.Join(w.baseDir, "turns.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turns file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"turn", "card", "action", "gov_score", "opp_score", "resources", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write turns header: %w", err)
	}

	for _, t := range turns {
		row := []string{
			strconv.Itoa(t.Turn),
			t.Card,
			t.Action,
			strconv.Itoa(t.GovScore),
			strconv.Itoa(t.OppScore),
			strconv.Itoa(t.Resources),
			t.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn row: %w", err)
		}
	}

	return nil
}
