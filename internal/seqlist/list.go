package seqlist

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned by Get when the index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an out-of-range positional access.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfRange so callers can use errors.Is.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// node holds one payload and owns its successor.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly-linked, insertion-ordered sequence.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding values in the given order.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.AppendLast(v)
	}
	return l
}

// AppendLast adds value as the new final element.
// The tail is found by walking from the head; no tail pointer is cached.
func (l *List[T]) AppendLast(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
		l.size++
		return
	}

	current := l.head
	for current.next != nil {
		current = current.next
	}
	current.next = n
	l.size++
}

// RemoveFirstMatch removes the first element equal to value.
// Returns false if the list is empty or holds no such element.
func (l *List[T]) RemoveFirstMatch(value T) bool {
	if l.head == nil {
		return false
	}

	if l.head.value == value {
		removed := l.head
		l.head = removed.next
		removed.next = nil
		l.size--
		return true
	}

	current := l.head
	for current.next != nil && current.next.value != value {
		current = current.next
	}
	if current.next == nil {
		return false
	}

	removed := current.next
	current.next = removed.next
	removed.next = nil
	l.size--
	return true
}

// Get returns the element at the zero-based index.
// Returns an *IndexError (matching ErrIndexOutOfRange) if index < 0 or index >= Len().
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Index: index, Len: l.size}
	}

	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current.value, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes every element, unlinking nodes one at a time.
func (l *List[T]) Clear() {
	current := l.head
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}
	l.head = nil
	l.size = 0
}

// All returns a forward iterator over the elements.
// Every call starts a fresh traversal from the head. Mutating the list while
// an iteration is in progress is undefined.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in list order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
