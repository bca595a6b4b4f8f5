package bot

import "golang.org/x/exp/rand"

// Source supplies every random draw the bot makes: die rolls and the final
// uniform tie-break in TopPriority. Tests inject a scripted source to pin
// outcomes.
type Source interface {
	Intn(n int) int
}

type randSource struct {
	rng *rand.Rand
}

func newRandSource(seed uint64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// roll simulates one six-sided die.
func roll(src Source) int {
	return src.Intn(6) + 1
}
