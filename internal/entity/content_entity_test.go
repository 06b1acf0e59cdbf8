package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertProjectRejectsDuplicateId(t *testing.T) {
	existing := []Project{{Id: 1, Title: "One"}, {Id: 2, Title: "Two"}}

	_, err := InsertProject(existing, Project{Id: 2, Title: "Dup"})
	assert.Error(t, err)

	next, err := InsertProject(existing, Project{Id: 3, Title: "Three"})
	require.NoError(t, err)
	assert.Len(t, next, 3)
	// Input slice untouched.
	assert.Len(t, existing, 2)
}

func TestWebsiteContentCloneIsDeep(t *testing.T) {
	original := &WebsiteContent{
		Projects: []Project{{Id: 1, Title: "P", Tags: []string{"go"}}},
		AboutMe:  AboutMe{Title: "About", Skills: []string{"Go"}},
		Home: HomeContent{
			Headline: "Hi",
			Socials:  []SocialLink{{Platform: "github", Url: "https://example.com"}},
		},
		Academics: AcademicsContent{
			CourseHistory: []GradeSection{
				{Title: "Grade 10", Courses: []Course{{Subject: "Math", Code: "MPM2D"}}},
			},
			AcademicGoals: []string{"g1"},
		},
		BlogPosts: []BlogPost{{Id: "a", Title: "T", Tags: []string{"meta"}}},
	}

	clone := original.Clone()
	clone.Projects[0].Title = "changed"
	clone.Projects[0].Tags[0] = "rust"
	clone.AboutMe.Skills[0] = "changed"
	clone.Home.Socials[0].Url = "changed"
	clone.Academics.CourseHistory[0].Courses[0].Code = "changed"
	clone.Academics.AcademicGoals[0] = "changed"
	clone.BlogPosts[0].Tags[0] = "changed"

	assert.Equal(t, "P", original.Projects[0].Title)
	assert.Equal(t, "go", original.Projects[0].Tags[0])
	assert.Equal(t, "Go", original.AboutMe.Skills[0])
	assert.Equal(t, "https://example.com", original.Home.Socials[0].Url)
	assert.Equal(t, "MPM2D", original.Academics.CourseHistory[0].Courses[0].Code)
	assert.Equal(t, "g1", original.Academics.AcademicGoals[0])
	assert.Equal(t, "meta", original.BlogPosts[0].Tags[0])
}

func TestCloneNil(t *testing.T) {
	var c *WebsiteContent
	assert.Nil(t, c.Clone())
}
