package view

import "testing"

func newTestList(n, scrolloff int) *List[int] {
	l := NewList[int](scrolloff)
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	l.SetItems(items)
	return l
}

func TestUpDownFirstLast(t *testing.T) {
	l := newTestList(10, 0)
	l.Down(5)
	if l.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", l.Cursor())
	}
	l.Last(5)
	if l.Cursor() != 9 {
		t.Fatalf("cursor = %d, want 9", l.Cursor())
	}
	l.First(5)
	if l.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", l.Cursor())
	}
	l.Up(5)
	if l.Cursor() != 0 {
		t.Fatalf("Up at 0 should clamp, got %d", l.Cursor())
	}
}

func TestScrolloffKeepsMargin(t *testing.T) {
	l := newTestList(20, 3)
	height := 10
	l.SetCursor(0, height)
	for i := 0; i < 8; i++ {
		l.Down(height)
	}
	// cursor is now at 8; the viewport has scrolled so that at least 3
	// rows stay visible below it (cursor-top is within [3, height-1-3]).
	if l.Cursor()-l.Top() < 3 {
		t.Fatalf("cursor inside top margin: cursor=%d top=%d", l.Cursor(), l.Top())
	}
	if l.Cursor()-l.Top() > height-1-3 {
		t.Fatalf("cursor inside bottom margin: cursor=%d top=%d", l.Cursor(), l.Top())
	}
}

func TestHalfPageMovement(t *testing.T) {
	l := newTestList(100, 0)
	l.SetCursor(0, 20)
	l.HalfPageDown(20)
	if l.Cursor() != 10 {
		t.Fatalf("cursor = %d, want 10", l.Cursor())
	}
	l.HalfPageUp(20)
	if l.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", l.Cursor())
	}
}

func TestShiftLineTopMiddleBottom(t *testing.T) {
	l := newTestList(50, 2)
	height := 10
	l.SetCursor(25, height)

	l.ShiftLineTop(height)
	if l.Top() > l.Cursor() {
		t.Fatalf("top %d should be <= cursor %d after ShiftLineTop", l.Top(), l.Cursor())
	}

	l.ShiftLineBottom(height)
	if l.Top()+height-1 < l.Cursor() {
		t.Fatalf("cursor %d should be within viewport after ShiftLineBottom (top=%d height=%d)", l.Cursor(), l.Top(), height)
	}

	l.ShiftLineMiddle(height)
	mid := l.Top() + height/2
	if mid != l.Cursor() {
		t.Fatalf("ShiftLineMiddle: top+height/2=%d, want cursor=%d", mid, l.Cursor())
	}
}

func TestEmptyListIsNoOp(t *testing.T) {
	l := NewList[string](2)
	l.Down(10)
	l.Last(10)
	if _, ok := l.Focused(); ok {
		t.Fatal("expected no focused item on empty list")
	}
}

func TestAppendKeepsCursorPinnedAtEnd(t *testing.T) {
	l := newTestList(3, 0)
	l.Last(5)
	l.Append(3, 4, 5)
	if l.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5 (pinned to new end)", l.Cursor())
	}
}

func TestRowToIndex(t *testing.T) {
	l := newTestList(10, 0)
	l.SetCursor(4, 5)
	items, top := l.Viewport(5)
	if len(items) != 5 {
		t.Fatalf("viewport len = %d, want 5", len(items))
	}
	if idx := l.RowToIndex(0); idx != top {
		t.Fatalf("RowToIndex(0) = %d, want %d", idx, top)
	}
	if idx := l.RowToIndex(100); idx != -1 {
		t.Fatalf("RowToIndex(100) = %d, want -1", idx)
	}
}
