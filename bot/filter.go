package bot

// The cascading priority filter used for every space, path and march-group
// choice. Filters narrow the candidate set in order: a filter that matches
// nothing is skipped, one that matches something replaces the set. Whatever
// ambiguity survives the whole chain is broken uniformly at random; that is
// the only randomness in space selection.

// Filter narrows a candidate set. A return of nil or an empty slice means
// the filter matched nothing and is skipped.
type Filter[T any] interface {
	narrow([]T) []T
}

// Criterion keeps the candidates matching a predicate.
type Criterion[T any] struct {
	Name  string
	Match func(T) bool
}

func (c Criterion[T]) narrow(candidates []T) []T {
	var kept []T
	for _, cand := range candidates {
		if c.Match(cand) {
			kept = append(kept, cand)
		}
	}
	return kept
}

// Highest keeps the candidates tied for the highest score.
type Highest[T any] struct {
	Name  string
	Score func(T) int
}

func (h Highest[T]) narrow(candidates []T) []T {
	return extreme(candidates, h.Score, func(a, b int) bool { return a > b })
}

// Lowest keeps the candidates tied for the lowest score.
type Lowest[T any] struct {
	Name  string
	Score func(T) int
}

func (l Lowest[T]) narrow(candidates []T) []T {
	return extreme(candidates, l.Score, func(a, b int) bool { return a < b })
}

func extreme[T any](candidates []T, score func(T) int, better func(a, b int) bool) []T {
	if len(candidates) == 0 {
		return nil
	}
	best := score(candidates[0])
	kept := []T{candidates[0]}
	for _, cand := range candidates[1:] {
		s := score(cand)
		switch {
		case better(s, best):
			best = s
			kept = kept[:0]
			kept = append(kept, cand)
		case s == best:
			kept = append(kept, cand)
		}
	}
	return kept
}

// TopPriority picks one candidate by running the filter cascade. An empty
// candidate list is a caller bug.
func TopPriority[T any](src Source, candidates []T, filters ...Filter[T]) T {
	if len(candidates) == 0 {
		panic("TopPriority called with no candidates")
	}

	for _, f := range filters {
		if len(candidates) == 1 {
			return candidates[0]
		}
		if kept := f.narrow(candidates); len(kept) > 0 {
			candidates = kept
		}
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[src.Intn(len(candidates))]
}
