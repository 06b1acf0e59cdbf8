package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Getting Started!! With Next.js", "getting-started-with-nextjs"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces\tand\ttabs", "multiple-spaces-and-tabs"},
		{"already-hyphenated---title", "already-hyphenated-title"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"100% Pure (Go)", "100-pure-go"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.title), "Slugify(%q)", c.title)
	}
}

func TestNewBlogPost(t *testing.T) {
	post := NewBlogPost("My First Post", "<p>hi</p>", "hi", []string{"meta"})

	assert.NotEmpty(t, post.Id)
	assert.Equal(t, "my-first-post", post.Slug)
	assert.False(t, post.Published)
	assert.Equal(t, []string{"meta"}, post.Tags)

	other := NewBlogPost("My First Post", "", "", nil)
	assert.NotEqual(t, post.Id, other.Id)
}

func TestRetitleRecomputesSlug(t *testing.T) {
	post := NewBlogPost("Old Title", "body", "", nil)
	before := post.UpdatedAt

	renamed := post.Retitle("New & Improved Title")

	assert.Equal(t, "New & Improved Title", renamed.Title)
	assert.Equal(t, "new-improved-title", renamed.Slug)
	assert.Equal(t, post.Id, renamed.Id)
	assert.False(t, renamed.UpdatedAt.Before(before))

	// The receiver is untouched.
	assert.Equal(t, "Old Title", post.Title)
	assert.Equal(t, "old-title", post.Slug)
}
