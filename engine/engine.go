package engine

import (
	"time"

	"maquis/bot"
	"maquis/game"
	"maquis/metrics"

	"github.com/rs/zerolog/log"
)

// GovernmentTurn is the other faction's move between bot turns. The real
// opponent is a human; drivers and tests plug in a script.
type GovernmentTurn func(*game.GameState)

// Engine sequences bot turns over a run of cards and keeps the round's
// action ledger.
type Engine struct {
	State      *game.GameState
	Bot        *bot.Bot
	Government GovernmentTurn
	Ledger     []game.Action

	collector metrics.Collector
}

type Option func(*Engine)

func WithGovernment(turn GovernmentTurn) Option {
	return func(e *Engine) {
		if turn != nil {
			e.Government = turn
		}
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.collector = c
		}
	}
}

func New(state *game.GameState, b *bot.Bot, options ...Option) *Engine {
	e := &Engine{
		State:      state,
		Bot:        b,
		Government: func(*game.GameState) {},
		collector:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one bot turn per card and returns the action ledger.
func (e *Engine) Run(cards []*game.Card) []game.Action {
	for turn, card := range cards {
		e.State.Card = card
		log.Info().Msgf("turn %d: card %q", turn+1, card.Name)

		start := time.Now()
		action := e.Bot.Act()
		// Committed speculation may have replaced the state value.
		e.State = e.Bot.State()

		e.Ledger = append(e.Ledger, action)
		e.collector.Add(metrics.TurnMetric{
			Turn:      turn + 1,
			Card:      card.Name,
			Action:    action.String(),
			GovScore:  e.State.GovernmentScore(),
			OppScore:  e.State.FrontScore(),
			Resources: e.State.FrontResources,
			Duration:  time.Since(start),
		})
		log.Info().Msgf("turn %d: %s", turn+1, action)

		e.Government(e.State)
	}
	return e.Ledger
}

// Metrics returns the collected per-turn records.
func (e *Engine) Metrics() []metrics.TurnMetric {
	return e.collector.Complete()
}
