package editor

// FieldEditor is the inline single-value editor. It mutates only local
// state and reports upward through onChange; persistence failures are not
// its problem. The commit rules:
//
//   - Blur or Enter (single-line) commits the buffer, calling onChange only
//     when the value actually changed.
//   - Ctrl+Enter commits multiline fields without requiring blur.
//   - Escape discards the buffer and reverts without calling back.
type FieldEditor struct {
	committed string
	buffer    string
	editing   bool
	multiline bool
	onChange  func(string)
}

func NewFieldEditor(value string, multiline bool, onChange func(string)) *FieldEditor {
	return &FieldEditor{
		committed: value,
		buffer:    value,
		multiline: multiline,
		onChange:  onChange,
	}
}

// Begin enters editing; a no-op if already editing.
func (e *FieldEditor) Begin() {
	if e.editing {
		return
	}
	e.editing = true
	e.buffer = e.committed
}

func (e *FieldEditor) Editing() bool {
	return e.editing
}

// Input replaces the local buffer while editing.
func (e *FieldEditor) Input(s string) {
	if !e.editing {
		return
	}
	e.buffer = s
}

// Value is the committed value; the buffer is invisible until committed.
func (e *FieldEditor) Value() string {
	return e.committed
}

// Buffer exposes the in-progress text for rendering the input widget.
func (e *FieldEditor) Buffer() string {
	return e.buffer
}

func (e *FieldEditor) commit() {
	if !e.editing {
		return
	}
	e.editing = false
	if e.buffer == e.committed {
		return
	}
	e.committed = e.buffer
	if e.onChange != nil {
		e.onChange(e.committed)
	}
}

// Blur commits, outside-click included.
func (e *FieldEditor) Blur() {
	e.commit()
}

// PressEnter commits single-line fields. In a multiline field Enter is a
// newline, not a commit.
func (e *FieldEditor) PressEnter() {
	if e.multiline {
		return
	}
	e.commit()
}

// PressCtrlEnter commits regardless of multiline.
func (e *FieldEditor) PressCtrlEnter() {
	e.commit()
}

// PressEscape discards the local edit and reverts. onChange is never called.
func (e *FieldEditor) PressEscape() {
	if !e.editing {
		return
	}
	e.editing = false
	e.buffer = e.committed
}
