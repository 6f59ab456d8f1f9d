package seqlist

// Sort reorders the list into non-decreasing order under cmp, so that
// cmp(Get(i), Get(i+1)) <= 0 holds for every adjacent pair afterwards.
//
// Sort runs repeated bubble passes from the head. Whenever cmp(current, next)
// is positive the two payloads are exchanged in place; nodes are never
// relinked. Passes repeat until one completes without an exchange. Only
// adjacent elements that compare strictly greater are exchanged, so equal
// elements keep their relative order.
//
// Returns the total number of exchanges, which is zero for an already sorted
// list. Lists with fewer than two elements are left untouched.
func (l *List[T]) Sort(cmp func(a, b T) int) (swaps int) {
	if l.size <= 1 {
		return 0
	}

	for {
		swapped := false
		for current, next := l.head, l.head.next; next != nil; current, next = next, next.next {
			if cmp(current.value, next.value) > 0 {
				current.value, next.value = next.value, current.value
				swapped = true
				swaps++
			}
		}
		if !swapped {
			return swaps
		}
	}
}

// IsSorted reports whether every adjacent pair satisfies cmp(a, b) <= 0.
func (l *List[T]) IsSorted(cmp func(a, b T) int) bool {
	if l.head == nil {
		return true
	}
	for current := l.head; current.next != nil; current = current.next {
		if cmp(current.value, current.next.value) > 0 {
			return false
		}
	}
	return true
}
