package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemovePassesWholeList(t *testing.T) {
	var got [][]string
	le := NewListEditor([]string{"a", "b", "c"}, func(items []string) { got = append(got, items) })

	le.Remove(1)

	assert.Equal(t, [][]string{{"a", "c"}}, got)
	assert.Equal(t, []string{"a", "c"}, le.Items())
}

func TestAddAppends(t *testing.T) {
	var got []string
	le := NewListEditor([]string{"a", "b", "c"}, func(items []string) { got = items })

	le.Add("d")

	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestAddRejectsWhitespaceOnly(t *testing.T) {
	calls := 0
	le := NewListEditor([]string{"a"}, func([]string) { calls++ })

	le.Add("")
	le.Add("   ")
	le.Add("\t\n")

	assert.Zero(t, calls)
	assert.Equal(t, []string{"a"}, le.Items())
}

func TestInlineEditCommitDiscipline(t *testing.T) {
	var got []string
	calls := 0
	le := NewListEditor([]string{"a", "b"}, func(items []string) { got = items; calls++ })

	// Commit with a change fires once with the whole list.
	le.EditItem(0)
	le.Input("A")
	le.CommitItem()
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"A", "b"}, got)

	// Commit with no change is silent.
	le.EditItem(1)
	le.Input("b")
	le.CommitItem()
	assert.Equal(t, 1, calls)

	// Cancel never fires.
	le.EditItem(1)
	le.Input("garbage")
	le.CancelItem()
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"A", "b"}, le.Items())
}

func TestOutOfRangeOpsAreNoOps(t *testing.T) {
	calls := 0
	le := NewListEditor([]string{"a"}, func([]string) { calls++ })

	le.Remove(-1)
	le.Remove(5)
	le.EditItem(3)
	le.CommitItem()

	assert.Zero(t, calls)
	assert.Equal(t, []string{"a"}, le.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	le := NewListEditor([]string{"a"}, nil)
	items := le.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a"}, le.Items())
}
