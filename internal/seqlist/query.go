package seqlist

// Find returns the first element satisfying pred.
func Find[T comparable](l *List[T], pred func(T) bool) (T, bool) {
	for v := range l.All() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func IndexFunc[T comparable](l *List[T], pred func(T) bool) int {
	i := 0
	for v := range l.All() {
		if pred(v) {
			return i
		}
		i++
	}
	return -1
}

// Filter returns every element satisfying pred, in list order.
func Filter[T comparable](l *List[T], pred func(T) bool) []T {
	var out []T
	for v := range l.All() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// MinBy returns the element with the smallest score.
//
// The first element is the initial candidate and a later element replaces it
// only when its score is strictly smaller, so ties keep the earlier element.
// Returns false for an empty list.
func MinBy[T comparable](l *List[T], score func(T) float64) (T, bool) {
	var (
		best      T
		bestScore float64
		found     bool
	)
	for v := range l.All() {
		s := score(v)
		if !found || s < bestScore {
			best, bestScore, found = v, s, true
		}
	}
	return best, found
}
