package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tool, ok := r.Get("get_projects")
	require.True(t, ok)
	assert.Equal(t, "get_projects", tool.Name)

	_, ok = r.Get("delete_everything")
	assert.False(t, ok)
}

func TestDescribeListsEveryTool(t *testing.T) {
	r := NewRegistry()
	desc := r.Describe()

	for _, name := range []string{
		"get_projects", "get_academics", "get_blog_posts",
		"get_contact_info", "get_about_me",
	} {
		assert.True(t, strings.Contains(desc, name), "missing %s", name)
	}
}

func TestBlogPostsToolFiltersUnpublished(t *testing.T) {
	r := NewRegistry()
	tool, ok := r.Get("get_blog_posts")
	require.True(t, ok)

	doc := &entity.WebsiteContent{
		BlogPosts: []entity.BlogPost{
			{Id: "a", Title: "Live", Slug: "live", Published: true, PublishedAt: time.Now()},
			{Id: "b", Title: "Draft", Slug: "draft", Published: false},
		},
	}

	out, err := tool.Call(doc)
	require.NoError(t, err)

	summaries, ok := out.([]blogPostSummary)
	require.True(t, ok)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Live", summaries[0].Title)
}

func TestContactInfoTool(t *testing.T) {
	r := NewRegistry()
	tool, _ := r.Get("get_contact_info")

	doc := &entity.WebsiteContent{
		Home: entity.HomeContent{
			Email:   "hi@example.com",
			Socials: []entity.SocialLink{{Platform: "github", Url: "https://github.com/x"}},
		},
	}

	out, err := tool.Call(doc)
	require.NoError(t, err)
	m := out.(map[string]interface{})
	assert.Equal(t, "hi@example.com", m["email"])
}
