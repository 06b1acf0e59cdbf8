package draft

import (
	"context"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
)

// ProjectsPage edits the project list as one draft slice.
type ProjectsPage struct {
	session  *content.Session
	draft    *Draft[[]entity.Project]
	editMode bool
}

func NewProjectsPage(session *content.Session) *ProjectsPage {
	base := session.Content().Projects
	return &ProjectsPage{
		session: session,
		draft: New(base, func(in []entity.Project) []entity.Project {
			out := make([]entity.Project, len(in))
			for i, p := range in {
				out[i] = p.Clone()
			}
			return out
		}),
	}
}

func (p *ProjectsPage) Projects() []entity.Project {
	return p.draft.Value()
}

func (p *ProjectsPage) EditMode() bool {
	return p.editMode
}

func (p *ProjectsPage) SetEditMode(ctx context.Context, on bool) bool {
	if on == p.editMode {
		return true
	}
	p.editMode = on
	p.session.SetEditMode(on)

	if on {
		p.draft.Reset(p.session.Content().Projects)
		return true
	}

	edited, dirty := p.draft.Flush()
	if !dirty {
		return true
	}
	doc := p.session.Content().Clone()
	doc.Projects = edited
	if !p.session.Commit(ctx, doc) {
		return false
	}
	p.draft.Reset(doc.Projects)
	return true
}

func (p *ProjectsPage) Discard() {
	p.draft.Discard()
}

// Add appends a project, enforcing id uniqueness within the list.
func (p *ProjectsPage) Add(project entity.Project) error {
	var err error
	p.draft.Apply(func(list *[]entity.Project) {
		var next []entity.Project
		next, err = entity.InsertProject(*list, project)
		if err != nil {
			return
		}
		*list = next
	})
	return err
}

func (p *ProjectsPage) Remove(id int) {
	p.draft.Apply(func(list *[]entity.Project) {
		for i, existing := range *list {
			if existing.Id == id {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return
			}
		}
	})
}

func (p *ProjectsPage) SetTitle(id int, title string) {
	p.update(id, func(pr *entity.Project) { pr.Title = title })
}

func (p *ProjectsPage) SetDescription(id int, description string) {
	p.update(id, func(pr *entity.Project) { pr.Description = description })
}

func (p *ProjectsPage) SetLinks(id int, githubUrl, liveUrl string) {
	p.update(id, func(pr *entity.Project) {
		pr.GithubUrl = githubUrl
		pr.LiveUrl = liveUrl
	})
}

// SetTags replaces the whole tag list, matching the list editor's
// replace-everything callback shape.
func (p *ProjectsPage) SetTags(id int, tags []string) {
	p.update(id, func(pr *entity.Project) {
		pr.Tags = append([]string(nil), tags...)
	})
}

func (p *ProjectsPage) update(id int, fn func(*entity.Project)) {
	p.draft.Apply(func(list *[]entity.Project) {
		for i := range *list {
			if (*list)[i].Id == id {
				fn(&(*list)[i])
				return
			}
		}
	})
}
