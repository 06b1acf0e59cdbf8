package draft

import (
	"context"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
)

// BlogPage edits the post list. Post ids are assigned once at creation;
// slugs are derived from titles and recomputed on retitle, never edited
// directly.
type BlogPage struct {
	session  *content.Session
	draft    *Draft[[]entity.BlogPost]
	editMode bool
}

func NewBlogPage(session *content.Session) *BlogPage {
	base := session.Content().BlogPosts
	return &BlogPage{
		session: session,
		draft: New(base, func(in []entity.BlogPost) []entity.BlogPost {
			out := make([]entity.BlogPost, len(in))
			for i, b := range in {
				out[i] = b.Clone()
			}
			return out
		}),
	}
}

func (p *BlogPage) Posts() []entity.BlogPost {
	return p.draft.Value()
}

// Published lists only published posts, newest first. This is what the
// public blog page renders.
func (p *BlogPage) Published() []entity.BlogPost {
	all := p.draft.Value()
	out := make([]entity.BlogPost, 0, len(all))
	for _, b := range all {
		if b.Published {
			out = append(out, b.Clone())
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].PublishedAt.After(out[i].PublishedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func (p *BlogPage) EditMode() bool {
	return p.editMode
}

func (p *BlogPage) SetEditMode(ctx context.Context, on bool) bool {
	if on == p.editMode {
		return true
	}
	p.editMode = on
	p.session.SetEditMode(on)

	if on {
		p.draft.Reset(p.session.Content().BlogPosts)
		return true
	}

	edited, dirty := p.draft.Flush()
	if !dirty {
		return true
	}
	doc := p.session.Content().Clone()
	doc.BlogPosts = edited
	if !p.session.Commit(ctx, doc) {
		return false
	}
	p.draft.Reset(doc.BlogPosts)
	return true
}

func (p *BlogPage) Discard() {
	p.draft.Discard()
}

// NewPost creates a draft post with a generated id and derived slug.
func (p *BlogPage) NewPost(title, body, excerpt string, tags []string) entity.BlogPost {
	post := entity.NewBlogPost(title, body, excerpt, tags)
	p.draft.Apply(func(list *[]entity.BlogPost) {
		*list = append(*list, post.Clone())
	})
	return post
}

// Retitle changes a post's title and recomputes its slug.
func (p *BlogPage) Retitle(id, title string) {
	p.update(id, func(b *entity.BlogPost) {
		*b = b.Retitle(title)
	})
}

func (p *BlogPage) SetBody(id, body, excerpt string) {
	p.update(id, func(b *entity.BlogPost) {
		b.Content = body
		b.Excerpt = excerpt
		b.UpdatedAt = time.Now()
	})
}

func (p *BlogPage) SetTags(id string, tags []string) {
	p.update(id, func(b *entity.BlogPost) {
		b.Tags = append([]string(nil), tags...)
		b.UpdatedAt = time.Now()
	})
}

// SetPublished flips visibility; first publish stamps PublishedAt.
func (p *BlogPage) SetPublished(id string, published bool) {
	p.update(id, func(b *entity.BlogPost) {
		if published && !b.Published {
			b.PublishedAt = time.Now()
		}
		b.Published = published
		b.UpdatedAt = time.Now()
	})
}

func (p *BlogPage) Remove(id string) {
	p.draft.Apply(func(list *[]entity.BlogPost) {
		for i, b := range *list {
			if b.Id == id {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return
			}
		}
	})
}

func (p *BlogPage) update(id string, fn func(*entity.BlogPost)) {
	p.draft.Apply(func(list *[]entity.BlogPost) {
		for i := range *list {
			if (*list)[i].Id == id {
				fn(&(*list)[i])
				return
			}
		}
	})
}
