package bot

import "maquis/game"

// TurnState is the scratch state of one bot turn. It is created fresh at the
// start of every Act call and discarded at the end; the harness snapshots it
// alongside the game state.
type TurnState struct {
	RallyConsidered bool
	MarchConsidered bool

	SpecialAllowed bool
	SpecialTaken   bool

	FreeOperation bool
	// MaxSpaces caps how many spaces the operation may touch. Zero means
	// unlimited.
	MaxSpaces int
	// OnlyIn restricts the operation to a subset of spaces, as when an event
	// grants a constrained free action. Empty means unrestricted.
	OnlyIn map[int]bool
	// Moving records guerrillas that already marched into a space this turn
	// so they are not spent twice.
	Moving map[int]game.PieceCount
	// Paid records spaces already charged for march movement this turn; each
	// space is charged at most once.
	Paid map[int]bool
}

func newTurnState(maxSpaces int, onlyIn []int, free bool) *TurnState {
	t := &TurnState{
		SpecialAllowed: true,
		FreeOperation:  free,
		MaxSpaces:      maxSpaces,
		OnlyIn:         make(map[int]bool),
		Moving:         make(map[int]game.PieceCount),
		Paid:           make(map[int]bool),
	}
	for _, id := range onlyIn {
		t.OnlyIn[id] = true
	}
	return t
}

func (t *TurnState) clone() *TurnState {
	c := *t
	c.OnlyIn = make(map[int]bool, len(t.OnlyIn))
	for k, v := range t.OnlyIn {
		c.OnlyIn[k] = v
	}
	c.Moving = make(map[int]game.PieceCount, len(t.Moving))
	for k, v := range t.Moving {
		c.Moving[k] = v
	}
	c.Paid = make(map[int]bool, len(t.Paid))
	for k, v := range t.Paid {
		c.Paid[k] = v
	}
	return &c
}

// allowed reports whether an operation may touch the space.
func (t *TurnState) allowed(id int) bool {
	return len(t.OnlyIn) == 0 || t.OnlyIn[id]
}

// withinBudget reports whether one more space fits under MaxSpaces.
func (t *TurnState) withinBudget(touched int) bool {
	return t.MaxSpaces == 0 || touched < t.MaxSpaces
}

// takeSpecial marks the once-per-turn special activity as used.
func (t *TurnState) takeSpecial() {
	if !t.SpecialAllowed {
		panic("special activity taken but not allowed")
	}
	t.SpecialTaken = true
}
