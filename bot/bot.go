package bot

import (
	"maquis/game"
	"maquis/utils"

	"github.com/rs/zerolog"
)

// Bot is the automated insurgent faction. Given the shared game state and
// one revealed card, Act picks exactly one legal operation (or passes) and
// carries it out.
type Bot struct {
	state *game.GameState
	turn  *TurnState
	src   Source
	log   zerolog.Logger
}

type Option func(*Bot)

func WithSource(src Source) Option {
	return func(b *Bot) {
		if src != nil {
			b.src = src
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(b *Bot) {
		b.log = log
	}
}

func New(state *game.GameState, options ...Option) *Bot {
	b := &Bot{
		state: state,
		src:   newRandSource(1),
		log:   zerolog.Nop(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// State returns the live game state. After Act commits speculative results
// the bot may hold a different state value than it was built with; callers
// driving a turn loop read it back here.
func (b *Bot) State() *game.GameState {
	return b.state
}

// movable caps how many guerrillas may leave a space.
type movable struct {
	hidden int
	active int
	total  int // combined cap; may be lower than hidden+active
}

// movableGuerrillas computes how many guerrillas may march out of a space
// without breaking a protection rule: a base keeps two total defenders (one
// guerrilla beside the base) and, if the space is populated, one hidden
// guerrilla; a Support space keeps its last guerrilla; a populated space
// never gives up government control by departure. Guerrillas that already
// marched in this turn are not movable again.
func (b *Bot) movableGuerrillas(id int) movable {
	p := b.state.Pieces(id)
	committed := b.turn.Moving[id]

	hidden := p[game.HiddenGuerrillas] - committed[game.HiddenGuerrillas]
	active := p[game.ActiveGuerrillas] - committed[game.ActiveGuerrillas]
	if hidden < 0 {
		hidden = 0
	}
	if active < 0 {
		active = 0
	}

	sp := b.state.Space(id)
	keepHidden := 0
	keepTotal := 0
	if p[game.FrontBase] > 0 {
		keepTotal = 1
		if sp.Population > 0 {
			keepHidden = 1
		}
	}
	if b.state.Spaces[id].Support == game.Support && keepTotal < 1 {
		keepTotal = 1
	}

	hidden -= keepHidden
	if hidden < 0 {
		hidden = 0
	}
	total := hidden + active
	if totalCap := p.Guerrillas() - committed.Guerrillas() - keepTotal; total > totalCap {
		total = totalCap
	}

	// Departure may not hand over a populated space.
	if sp.Population > 0 {
		gov := p.GovPieces()
		front := p.FrontPieces()
		if front >= gov && total > front-gov {
			total = front - gov
		}
	}

	if total < 0 {
		total = 0
	}
	if hidden > total {
		hidden = total
	}
	if active > total {
		active = total
	}
	return movable{hidden: hidden, active: active, total: total}
}

// safelyFlippable reports whether a hidden guerrilla in the space can go
// active without exposing a base.
func (b *Bot) safelyFlippable(id int) bool {
	p := b.state.Pieces(id)
	if p[game.HiddenGuerrillas] == 0 {
		return false
	}
	if p[game.FrontBase] > 0 {
		return p[game.HiddenGuerrillas] >= 2
	}
	return true
}

// protectedHidden is the hidden-guerrilla floor a base space must keep.
func (b *Bot) protectedHidden(id int) int {
	p := b.state.Pieces(id)
	if p[game.FrontBase] == 0 {
		return 0
	}
	if b.state.Space(id).Population > 0 {
		return 2
	}
	return 1
}

// basesProtected reports whether every front base has its hidden screen.
func (b *Bot) basesProtected() bool {
	for _, id := range b.state.SpaceIDs() {
		p := b.state.Pieces(id)
		if p[game.FrontBase] == 0 {
			continue
		}
		if p[game.HiddenGuerrillas] < b.protectedHidden(id) {
			return false
		}
	}
	return true
}

// pay spends count resources, or nothing on a free operation. The caller
// must have checked funds.
func (b *Bot) pay(count int) {
	if b.turn.FreeOperation || count == 0 {
		return
	}
	if b.state.FrontResources < count {
		panic("operation spending resources it does not have")
	}
	b.state.AddFrontResources(-count)
}

// funds is the spendable resource total; free operations spend nothing so
// everything is affordable.
func (b *Bot) funds() int {
	if b.turn.FreeOperation {
		return 99
	}
	return b.state.FrontResources
}

// finishOp derives the reported action from the committed turn. A limited
// operation is only reported when the sequence of play offers that slot.
func (b *Bot) finishOp(spaces int) game.Action {
	if b.turn.SpecialTaken {
		return game.FullOperationWithSpecialActivity
	}
	if spaces == 1 && (b.turn.MaxSpaces == 1 || b.state.SecondEligible) {
		return game.LimitedOperation
	}
	return game.FullOperation
}

func removeID(ids []int, id int) []int {
	i := utils.FindIndex(ids, id)
	if i < 0 {
		return ids
	}
	return append(ids[:i], ids[i+1:]...)
}
