package draft

// Draft holds a working copy of a value while a page is in edit mode. The
// base snapshot is never mutated; the first Apply clones it and all later
// edits land on the clone. Flush hands the working copy to the caller and
// resets the draft to clean.
type Draft[T any] struct {
	base    T
	working T
	dirty   bool
	clone   func(T) T
}

func New[T any](base T, clone func(T) T) *Draft[T] {
	return &Draft[T]{
		base:    base,
		working: base,
		clone:   clone,
	}
}

// Value is the value pages render: the base until the first edit, the
// working copy after.
func (d *Draft[T]) Value() T {
	return d.working
}

func (d *Draft[T]) Dirty() bool {
	return d.dirty
}

// Apply runs fn against a private copy. The base snapshot stays intact so
// a discarded draft costs nothing.
func (d *Draft[T]) Apply(fn func(*T)) {
	if !d.dirty {
		d.working = d.clone(d.base)
		d.dirty = true
	}
	fn(&d.working)
}

// Flush returns the working copy and whether anything changed, then resets
// the draft around it as the new base.
func (d *Draft[T]) Flush() (T, bool) {
	if !d.dirty {
		return d.base, false
	}
	out := d.working
	d.base = out
	d.working = out
	d.dirty = false
	return out, true
}

// Discard drops the working copy and reverts to the base snapshot.
func (d *Draft[T]) Discard() {
	d.working = d.base
	d.dirty = false
}

// Reset replaces the base snapshot, dropping any in-progress edits. Pages
// call this when a fresh document arrives from the server.
func (d *Draft[T]) Reset(base T) {
	d.base = base
	d.working = base
	d.dirty = false
}
