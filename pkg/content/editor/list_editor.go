package editor

import "strings"

// ListEditor edits an ordered sequence of strings. Every mutation calls
// back with the entire new sequence, never a delta: callers treat the
// callback as "replace this list".
type ListEditor struct {
	items     []string
	editIndex int
	buffer    string
	onReplace func([]string)
}

func NewListEditor(items []string, onReplace func([]string)) *ListEditor {
	copied := make([]string, len(items))
	copy(copied, items)
	return &ListEditor{
		items:     copied,
		editIndex: -1,
		onReplace: onReplace,
	}
}

// Items returns a copy of the current sequence.
func (e *ListEditor) Items() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

func (e *ListEditor) replace() {
	if e.onReplace != nil {
		e.onReplace(e.Items())
	}
}

// EditItem begins inline editing of one item.
func (e *ListEditor) EditItem(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}
	e.editIndex = i
	e.buffer = e.items[i]
}

func (e *ListEditor) Editing() bool {
	return e.editIndex >= 0
}

func (e *ListEditor) Input(s string) {
	if e.editIndex < 0 {
		return
	}
	e.buffer = s
}

// CommitItem applies the buffered edit; same discipline as the field
// editor — no callback when nothing changed.
func (e *ListEditor) CommitItem() {
	if e.editIndex < 0 {
		return
	}
	i := e.editIndex
	e.editIndex = -1
	if e.buffer == e.items[i] {
		return
	}
	e.items[i] = e.buffer
	e.replace()
}

// CancelItem discards the buffered edit without calling back.
func (e *ListEditor) CancelItem() {
	e.editIndex = -1
}

// Remove deletes the item immediately, no confirmation.
func (e *ListEditor) Remove(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}
	if e.editIndex == i {
		e.editIndex = -1
	}
	e.items = append(e.items[:i:i], e.items[i+1:]...)
	e.replace()
}

// Add appends a new item. A whitespace-only value is a no-op: nothing is
// appended and no callback fires.
func (e *ListEditor) Add(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	e.items = append(e.items, s)
	e.replace()
}
