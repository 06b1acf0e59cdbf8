package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
)

func cloneGoals(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func TestDraftCopyOnWrite(t *testing.T) {
	base := []string{"g1"}
	d := New(base, cloneGoals)

	d.Apply(func(goals *[]string) { *goals = append(*goals, "g2") })

	// The base snapshot is untouched.
	assert.Equal(t, []string{"g1"}, base)
	assert.Equal(t, []string{"g1", "g2"}, d.Value())
	assert.True(t, d.Dirty())
}

func TestDraftFlushLifecycle(t *testing.T) {
	d := New([]string{"g1"}, cloneGoals)

	// Clean flush reports nothing to commit.
	_, dirty := d.Flush()
	assert.False(t, dirty)

	d.Apply(func(goals *[]string) { (*goals)[0] = "edited" })
	out, dirty := d.Flush()
	assert.True(t, dirty)
	assert.Equal(t, []string{"edited"}, out)

	// After flush the working copy becomes the base.
	assert.False(t, d.Dirty())
	assert.Equal(t, []string{"edited"}, d.Value())
}

func TestDraftDiscard(t *testing.T) {
	d := New([]string{"g1"}, cloneGoals)
	d.Apply(func(goals *[]string) { *goals = nil })
	d.Discard()

	assert.False(t, d.Dirty())
	assert.Equal(t, []string{"g1"}, d.Value())
}

func TestUpdateAtNestedPath(t *testing.T) {
	a := entity.AcademicsContent{
		CourseHistory: []entity.GradeSection{
			{Title: "Grade 9"},
			{Title: "Grade 10", Courses: []entity.Course{
				{Subject: "Math", Code: "MPM2D"},
				{Subject: "Science", Code: "SNC2D"},
			}},
		},
	}

	err := UpdateAt(&a, "CourseHistory[1].Courses[0].Code", "MCR3U")
	require.NoError(t, err)
	assert.Equal(t, "MCR3U", a.CourseHistory[1].Courses[0].Code)
	assert.Equal(t, "SNC2D", a.CourseHistory[1].Courses[1].Code)

	got, err := StringAt(&a, "CourseHistory[1].Title")
	require.NoError(t, err)
	assert.Equal(t, "Grade 10", got)
}

func TestUpdateAtErrors(t *testing.T) {
	a := entity.AcademicsContent{Title: "Academics"}

	assert.Error(t, UpdateAt(&a, "NoSuchField", "x"))
	assert.Error(t, UpdateAt(&a, "CourseHistory[3].Title", "x"))
	assert.Error(t, UpdateAt(&a, "Title", 42))
	assert.Error(t, UpdateAt(a, "Title", "x"))
}
