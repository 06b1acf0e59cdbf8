package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL slug from a post title: lowercased, non-word
// characters stripped, whitespace collapsed to single hyphens, no leading
// or trailing hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NewBlogPost assigns the generated id once; it never changes afterwards.
func NewBlogPost(title, content, excerpt string, tags []string) BlogPost {
	now := time.Now()
	return BlogPost{
		Id:          uuid.NewString(),
		Title:       title,
		Slug:        Slugify(title),
		Content:     content,
		Excerpt:     excerpt,
		PublishedAt: now,
		UpdatedAt:   now,
		Tags:        cloneStrings(tags),
		Published:   false,
	}
}

// Retitle updates the title and recomputes the slug. The slug is never set
// independently in the normal flow.
func (b BlogPost) Retitle(title string) BlogPost {
	c := b.Clone()
	c.Title = title
	c.Slug = Slugify(title)
	c.UpdatedAt = time.Now()
	return c
}
