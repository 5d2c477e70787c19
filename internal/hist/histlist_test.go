package hist

import "testing"

func TestAppendTruncatesSuffix(t *testing.T) {
	l := NewWithSeed(10, "a")
	l.Append("b")
	l.Append("c")
	l.Append("d")
	if l.Len() != 4 || l.Ptr() != 3 {
		t.Fatalf("got len=%d ptr=%d, want len=4 ptr=3", l.Len(), l.Ptr())
	}
	l.Prev(2) // ptr -> 1, current "b"
	if got := l.Current(); got != "b" {
		t.Fatalf("Current() = %q, want %q", got, "b")
	}
	l.Append("x")
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (c,d truncated)", l.Len())
	}
	if l.Ptr() != 2 {
		t.Fatalf("Ptr() = %d, want 2", l.Ptr())
	}
	if got := l.Current(); got != "x" {
		t.Fatalf("Current() = %q, want %q", got, "x")
	}
}

func TestAppendAtCapacityDropsOldest(t *testing.T) {
	l := NewWithSeed(3, "a")
	l.Append("b")
	l.Append("c")
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	l.Append("d")
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after capacity eviction", l.Len())
	}
	if got := l.Current(); got != "d" {
		t.Fatalf("Current() = %q, want %q", got, "d")
	}
	l.Prev(2)
	if got := l.Current(); got != "b" {
		t.Fatalf("Current() = %q, want %q (a was evicted)", got, "b")
	}
}

func TestNextPrevSaturate(t *testing.T) {
	l := NewWithSeed(5, 0)
	l.Append(1)
	l.Append(2)

	if got := l.Next(10); got != 2 {
		t.Fatalf("Next(10) = %v, want 2 (saturated)", got)
	}
	if got := l.Prev(10); got != 0 {
		t.Fatalf("Prev(10) = %v, want 0 (saturated)", got)
	}
}

func TestAppendPropertyPtrLenRelation(t *testing.T) {
	l := NewWithSeed(100, 0)
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	l.Prev(2) // ptr now len-3
	ptrBefore := l.Ptr()
	l.Append(99)
	if l.Len() != ptrBefore+2 {
		t.Fatalf("Len() = %d, want %d", l.Len(), ptrBefore+2)
	}
	if l.Ptr() != ptrBefore+1 {
		t.Fatalf("Ptr() = %d, want %d", l.Ptr(), ptrBefore+1)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewWithSeed(5, "a")
	l.Append("b")
	clone := l.Clone()
	clone.Append("c")
	if l.Len() == clone.Len() {
		t.Fatalf("expected clone mutation to not affect original")
	}
	if got := l.Current(); got != "b" {
		t.Fatalf("original Current() = %q, want %q", got, "b")
	}
}

func TestNextOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Next on empty List")
		}
	}()
	l := New[int](5)
	l.Next(1)
}
