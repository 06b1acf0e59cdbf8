package draft

import (
	"context"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
)

// AcademicsPage is the reducer behind the academics editor. Edits accumulate
// in a draft of the academics subtree only; the rest of the document is left
// alone until flush, when the page clones the session document, splices the
// draft in and commits the whole thing.
type AcademicsPage struct {
	session  *content.Session
	draft    *Draft[entity.AcademicsContent]
	editMode bool
}

func NewAcademicsPage(session *content.Session) *AcademicsPage {
	base := session.Content().Academics
	return &AcademicsPage{
		session: session,
		draft:   New(base, entity.AcademicsContent.Clone),
	}
}

// Academics is what the page renders: the draft while editing, which equals
// the session snapshot when clean.
func (p *AcademicsPage) Academics() entity.AcademicsContent {
	return p.draft.Value()
}

func (p *AcademicsPage) EditMode() bool {
	return p.editMode
}

// SetEditMode drives the commit lifecycle. Turning edit mode off flushes the
// draft: the full document is reconstructed from the session snapshot plus
// the edited subtree, then committed as one replace. Turning it on just
// refreshes the draft base.
func (p *AcademicsPage) SetEditMode(ctx context.Context, on bool) bool {
	if on == p.editMode {
		return true
	}
	p.editMode = on
	p.session.SetEditMode(on)

	if on {
		p.draft.Reset(p.session.Content().Academics)
		return true
	}

	edited, dirty := p.draft.Flush()
	if !dirty {
		return true
	}
	doc := p.session.Content().Clone()
	doc.Academics = edited
	if !p.session.Commit(ctx, doc) {
		return false
	}
	p.draft.Reset(doc.Academics)
	return true
}

// Discard drops pending edits without committing.
func (p *AcademicsPage) Discard() {
	p.draft.Discard()
}

func (p *AcademicsPage) SetTitle(title string) {
	p.draft.Apply(func(a *entity.AcademicsContent) { a.Title = title })
}

func (p *AcademicsPage) SetSubtitle(subtitle string) {
	p.draft.Apply(func(a *entity.AcademicsContent) { a.Subtitle = subtitle })
}

func (p *AcademicsPage) SetGoals(goals []string) {
	p.draft.Apply(func(a *entity.AcademicsContent) {
		a.AcademicGoals = append([]string(nil), goals...)
	})
}

func (p *AcademicsPage) AddGoal(goal string) {
	p.draft.Apply(func(a *entity.AcademicsContent) {
		a.AcademicGoals = append(a.AcademicGoals, goal)
	})
}

func (p *AcademicsPage) RemoveGoal(i int) {
	p.draft.Apply(func(a *entity.AcademicsContent) {
		if i < 0 || i >= len(a.AcademicGoals) {
			return
		}
		a.AcademicGoals = append(a.AcademicGoals[:i:i], a.AcademicGoals[i+1:]...)
	})
}

func (p *AcademicsPage) SetAchievements(items []string) {
	p.draft.Apply(func(a *entity.AcademicsContent) {
		a.AcademicAchievements = append([]string(nil), items...)
	})
}

// SetCourseCode addresses one course by path through the copy-on-write
// working value, so sibling sections keep their original backing arrays.
func (p *AcademicsPage) SetCourseCode(section, course int, code string) error {
	var err error
	p.draft.Apply(func(a *entity.AcademicsContent) {
		err = UpdateAt(a, pathf("CourseHistory[%d].Courses[%d].Code", section, course), code)
	})
	return err
}

func (p *AcademicsPage) SetCourseSubject(section, course int, subject string) error {
	var err error
	p.draft.Apply(func(a *entity.AcademicsContent) {
		err = UpdateAt(a, pathf("CourseHistory[%d].Courses[%d].Subject", section, course), subject)
	})
	return err
}

func (p *AcademicsPage) SetExamScore(i int, score string) error {
	var err error
	p.draft.Apply(func(a *entity.AcademicsContent) {
		err = UpdateAt(a, pathf("ExamScores[%d].Score", i), score)
	})
	return err
}
