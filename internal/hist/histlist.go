// Package hist implements HistList, a bounded ordered sequence with a
// cursor, used both as the TextBuffer undo/redo checkpoint chain and as a
// Pane's jump list of Views.
package hist

// List is a bounded ordered sequence of T with a cursor. append truncates
// any forward history beyond the cursor, mirroring shell/vim undo-tree
// semantics where a new edit after an undo discards the redone future.
type List[T any] struct {
	items   []T
	ptr     int
	maxSize int
}

// New creates an empty List with the given capacity. maxSize must be >= 1.
func New[T any](maxSize int) *List[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &List[T]{maxSize: maxSize, ptr: -1}
}

// NewWithSeed creates a List already holding one element, satisfying the
// "history always contains at least one element" invariant (spec §3.3)
// immediately on construction.
func NewWithSeed[T any](maxSize int, seed T) *List[T] {
	l := New[T](maxSize)
	l.items = append(l.items, seed)
	l.ptr = 0
	return l
}

// Len returns the number of stored items.
func (l *List[T]) Len() int { return len(l.items) }

// Ptr returns the current cursor index.
func (l *List[T]) Ptr() int { return l.ptr }

// Append truncates any suffix beyond the cursor, then appends item. When
// the cursor already sits on the last slot of a full list, the oldest
// element is dropped instead and ptr stays put (spec §4.1).
func (l *List[T]) Append(item T) {
	if l.ptr == l.maxSize-1 && len(l.items) >= l.maxSize {
		l.items = append(l.items[1:], item)
		return
	}
	l.ptr++
	l.items = l.items[:l.ptr]
	l.items = append(l.items, item)
}

// Next advances the cursor forward by k, saturating at the last index, and
// returns the element the cursor now points to. Panics if the list is
// empty — a programmer-contract violation per spec §4.1.
func (l *List[T]) Next(k int) T {
	if len(l.items) == 0 {
		panic("hist: Next on empty List")
	}
	l.ptr += k
	if l.ptr > len(l.items)-1 {
		l.ptr = len(l.items) - 1
	}
	return l.items[l.ptr]
}

// Prev moves the cursor backward by k, saturating at index 0, and returns
// the element the cursor now points to. Panics if the list is empty.
func (l *List[T]) Prev(k int) T {
	if len(l.items) == 0 {
		panic("hist: Prev on empty List")
	}
	l.ptr -= k
	if l.ptr < 0 {
		l.ptr = 0
	}
	return l.items[l.ptr]
}

// Current returns the element under the cursor. Panics if the list is
// empty or the cursor has not been positioned yet (ptr < 0).
func (l *List[T]) Current() T {
	if l.ptr < 0 || l.ptr >= len(l.items) {
		panic("hist: Current on empty or unpositioned List")
	}
	return l.items[l.ptr]
}

// Clone produces an independent copy preserving ptr.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{
		items:   append([]T(nil), l.items...),
		ptr:     l.ptr,
		maxSize: l.maxSize,
	}
	return out
}
