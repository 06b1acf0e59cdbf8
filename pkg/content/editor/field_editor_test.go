package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlurCommitsChangedValueOnce(t *testing.T) {
	var calls []string
	fe := NewFieldEditor("Hello", false, func(v string) { calls = append(calls, v) })

	fe.Begin()
	fe.Input("World")
	fe.Blur()

	assert.Equal(t, []string{"World"}, calls)
	assert.Equal(t, "World", fe.Value())
	assert.False(t, fe.Editing())
}

func TestBlurWithoutChangeDoesNotCallBack(t *testing.T) {
	calls := 0
	fe := NewFieldEditor("Hello", false, func(string) { calls++ })

	fe.Begin()
	fe.Input("Hello")
	fe.Blur()

	assert.Zero(t, calls)
}

func TestEscapeDiscardsSilently(t *testing.T) {
	calls := 0
	fe := NewFieldEditor("Hello", false, func(string) { calls++ })

	fe.Begin()
	fe.Input("garbage")
	fe.PressEscape()

	assert.Zero(t, calls)
	assert.Equal(t, "Hello", fe.Value())
	assert.Equal(t, "Hello", fe.Buffer())
	assert.False(t, fe.Editing())
}

func TestEnterCommitsSingleLineOnly(t *testing.T) {
	var got string
	single := NewFieldEditor("a", false, func(v string) { got = v })
	single.Begin()
	single.Input("b")
	single.PressEnter()
	assert.Equal(t, "b", got)

	multiCalls := 0
	multi := NewFieldEditor("a", true, func(string) { multiCalls++ })
	multi.Begin()
	multi.Input("line1\nline2")
	multi.PressEnter()
	assert.Zero(t, multiCalls)
	assert.True(t, multi.Editing())

	multi.PressCtrlEnter()
	assert.Equal(t, 1, multiCalls)
	assert.Equal(t, "line1\nline2", multi.Value())
}

func TestInputIgnoredWhenNotEditing(t *testing.T) {
	fe := NewFieldEditor("x", false, nil)
	fe.Input("y")
	assert.Equal(t, "x", fe.Buffer())
}
