package bot

import (
	"maquis/game"

	"github.com/rs/zerolog"
)

// The speculative evaluation harness. A trial runs a reversible sub-action
// against a snapshot of the game state and turn scratch, with log output
// suppressed. The caller inspects the trial's resulting state and either
// commits it, replacing the live state, or simply drops it; a dropped trial
// leaves no observable effect at all.

type trial struct {
	ok    bool
	state *game.GameState
	turn  *TurnState
}

// speculate snapshots state and scratch, runs fn, then restores the live
// pointers. The mutated copies ride back in the trial for inspection and a
// possible commit.
func (b *Bot) speculate(fn func(*Bot) bool) trial {
	liveState := b.state
	liveTurn := b.turn
	liveLog := b.log

	b.state = b.state.Copy()
	b.turn = b.turn.clone()
	b.log = zerolog.Nop()

	ok := fn(b)

	t := trial{ok: ok, state: b.state, turn: b.turn}

	b.state = liveState
	b.turn = liveTurn
	b.log = liveLog
	return t
}

// commit adopts a trial's resulting state as the live state.
func (b *Bot) commit(t trial) {
	b.state = t.state
	b.turn = t.turn
}
