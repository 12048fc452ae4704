// Package view holds the cursor/scrolloff engine and the Model
// contract every concrete view (internal/views) implements, per
// spec.md §4.8. Each view owns its item sequence contiguously — the
// cursor is an index, never a reference — so it survives mid-ingest
// resizes (spec.md §9, "Arena-owned view items").
package view

// List is the generic, scrolloff-aware cursor engine backing a view's
// item sequence. It knows nothing about rendering; height is passed
// in by the caller on each navigation call since it varies with
// terminal size.
type List[T any] struct {
	Items     []T
	cursor    int
	top       int
	scrolloff int
}

// NewList creates an empty List with the given scrolloff.
func NewList[T any](scrolloff int) *List[T] {
	return &List[T]{scrolloff: scrolloff}
}

// SetScrolloff updates the scrolloff margin (":set scrolloff N").
func (l *List[T]) SetScrolloff(n int) {
	if n < 0 {
		n = 0
	}
	l.scrolloff = n
}

// SetItems replaces the item sequence, clamping the cursor if it now
// falls outside the new bounds. Used by Reload and by pager append.
func (l *List[T]) SetItems(items []T) {
	l.Items = items
	l.setCursor(l.cursor)
}

// Append adds items to the end of the sequence in stream order
// (spec.md §5, pager ingest ordering), leaving the cursor untouched
// unless it was already resting at the old last item.
func (l *List[T]) Append(items ...T) {
	wasAtEnd := l.cursor == len(l.Items)-1
	l.Items = append(l.Items, items...)
	if wasAtEnd {
		l.cursor = len(l.Items) - 1
	}
}

func (l *List[T]) Len() int    { return len(l.Items) }
func (l *List[T]) Cursor() int { return l.cursor }
func (l *List[T]) Top() int    { return l.top }

// Focused returns the item under the cursor, or the zero value and
// false if the sequence is empty.
func (l *List[T]) Focused() (T, bool) {
	var zero T
	if l.cursor < 0 || l.cursor >= len(l.Items) {
		return zero, false
	}
	return l.Items[l.cursor], true
}

func (l *List[T]) setCursor(i int) {
	if len(l.Items) == 0 {
		l.cursor, l.top = 0, 0
		return
	}
	l.cursor = clamp(i, 0, len(l.Items)-1)
}

// SetCursor moves the cursor to i, clamped to bounds, and re-anchors
// the viewport for the given height.
func (l *List[T]) SetCursor(i, height int) {
	l.setCursor(i)
	l.ensureVisible(height)
}

func (l *List[T]) Up(height int)   { l.SetCursor(l.cursor-1, height) }
func (l *List[T]) Down(height int) { l.SetCursor(l.cursor+1, height) }
func (l *List[T]) First(height int) { l.SetCursor(0, height) }
func (l *List[T]) Last(height int)  { l.SetCursor(len(l.Items)-1, height) }

func (l *List[T]) HalfPageUp(height int) {
	step := height / 2
	if step < 1 {
		step = 1
	}
	l.SetCursor(l.cursor-step, height)
}

func (l *List[T]) HalfPageDown(height int) {
	step := height / 2
	if step < 1 {
		step = 1
	}
	l.SetCursor(l.cursor+step, height)
}

func (l *List[T]) maxTop(height int) int {
	m := len(l.Items) - height
	if m < 0 {
		m = 0
	}
	return m
}

// ShiftLineTop scrolls the viewport so the focused row sits as close
// to the top as the scrolloff margin allows.
func (l *List[T]) ShiftLineTop(height int) {
	l.top = clamp(l.cursor-l.scrolloff, 0, l.maxTop(height))
}

// ShiftLineMiddle centers the focused row in the viewport.
func (l *List[T]) ShiftLineMiddle(height int) {
	l.top = clamp(l.cursor-height/2, 0, l.maxTop(height))
}

// ShiftLineBottom scrolls the viewport so the focused row sits as
// close to the bottom as the scrolloff margin allows.
func (l *List[T]) ShiftLineBottom(height int) {
	l.top = clamp(l.cursor-height+1+l.scrolloff, 0, l.maxTop(height))
}

// ensureVisible keeps the cursor within [top+scrolloff, top+height-1-scrolloff]
// whenever the viewport is large enough to honour the margin.
func (l *List[T]) ensureVisible(height int) {
	if height <= 0 {
		return
	}
	maxTop := l.maxTop(height)
	off := l.scrolloff
	if 2*off >= height {
		off = 0 // margin too large for the viewport: fall back to plain clamping
	}
	if l.cursor-l.top < off {
		l.top = l.cursor - off
	}
	if l.cursor-l.top > height-1-off {
		l.top = l.cursor - height + 1 + off
	}
	l.top = clamp(l.top, 0, maxTop)
}

// Viewport returns the slice of items currently visible in a viewport
// of the given height, along with the index (into Items) of its first
// element.
func (l *List[T]) Viewport(height int) ([]T, int) {
	if height <= 0 || len(l.Items) == 0 {
		return nil, 0
	}
	end := l.top + height
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.top:end], l.top
}

// RowToIndex converts a viewport row (0-based, as reported by a mouse
// event) into an item index, or -1 if the row is out of range.
func (l *List[T]) RowToIndex(row int) int {
	i := l.top + row
	if i < 0 || i >= len(l.Items) {
		return -1
	}
	return i
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
