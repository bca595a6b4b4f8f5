package metrics

import "time"

// TurnMetric records one bot turn for later analysis.
type TurnMetric struct {
	Turn     int
	Card     string
	Action   string
	GovScore int
	OppScore int
	// Resources is the faction total after the turn.
	Resources int
	Duration  time.Duration
}

type Collector interface {
	Add(TurnMetric)
	Complete() []TurnMetric
}

type collector struct {
	turns []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Add(m TurnMetric) {
	c.turns = append(c.turns, m)
}

func (c *collector) Complete() []TurnMetric {
	return c.turns
}

// dummyCollector drops everything; used when no metrics are wanted.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Add(TurnMetric)         {}
func (dummyCollector) Complete() []TurnMetric { return nil }
