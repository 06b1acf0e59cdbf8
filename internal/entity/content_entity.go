package entity

import (
	"fmt"
	"time"
)

// WebsiteContent is the single root document. The whole tree is the unit of
// persistence: no slice is individually addressable in storage, every write
// replaces the entire document.
type WebsiteContent struct {
	Projects                  []Project        `json:"projects"`
	AcademicAchievements      []Achievement    `json:"academicAchievements"`
	ExtracurricularActivities []Activity       `json:"extracurricularActivities"`
	Files                     []FileItem       `json:"files"`
	AboutMe                   AboutMe          `json:"aboutMe"`
	Collaborations            []Collaboration  `json:"collaborations"`
	Volunteering              []Volunteering   `json:"volunteering"`
	Education                 []Education      `json:"education"`
	Home                      HomeContent      `json:"home"`
	BlogPosts                 []BlogPost       `json:"blogPosts"`
	Academics                 AcademicsContent `json:"academics"`
	Services                  []ServiceItem    `json:"services"`
}

type Project struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	GithubUrl   string   `json:"githubUrl"`
	LiveUrl     string   `json:"liveUrl"`
}

type Achievement struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
}

type Activity struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Years       string `json:"years"`
}

type FileItem struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Url      string `json:"url"`
	Category string `json:"category"`
}

type AboutMe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
}

type Collaboration struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Volunteering struct {
	Id           int    `json:"id"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Hours        int    `json:"hours"`
}

type Education struct {
	Id          int    `json:"id"`
	School      string `json:"school"`
	Program     string `json:"program"`
	Years       string `json:"years"`
	Description string `json:"description"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	Url      string `json:"url"`
}

type HomeContent struct {
	Headline    string       `json:"headline"`
	Subheadline string       `json:"subheadline"`
	Intro       string       `json:"intro"`
	Email       string       `json:"email"`
	Socials     []SocialLink `json:"socials"`
}

type ServiceItem struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type BlogPost struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
}

// InsertProject appends a project to the list, rejecting duplicate ids.
// Returns a new slice; the input is never mutated.
func InsertProject(projects []Project, p Project) ([]Project, error) {
	for _, existing := range projects {
		if existing.Id == p.Id {
			return nil, fmt.Errorf("project id %d already exists", p.Id)
		}
	}
	next := make([]Project, 0, len(projects)+1)
	next = append(next, projects...)
	next = append(next, p.Clone())
	return next, nil
}

// Clone methods produce deep copies. The draft layer relies on these to keep
// previous snapshots untouched while editing.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (p Project) Clone() Project {
	c := p
	c.Tags = cloneStrings(p.Tags)
	return c
}

func (b BlogPost) Clone() BlogPost {
	c := b
	c.Tags = cloneStrings(b.Tags)
	return c
}

func (a AboutMe) Clone() AboutMe {
	c := a
	c.Skills = cloneStrings(a.Skills)
	c.Interests = cloneStrings(a.Interests)
	return c
}

func (h HomeContent) Clone() HomeContent {
	c := h
	if h.Socials != nil {
		c.Socials = make([]SocialLink, len(h.Socials))
		copy(c.Socials, h.Socials)
	}
	return c
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneBlogPosts(in []BlogPost) []BlogPost {
	if in == nil {
		return nil
	}
	out := make([]BlogPost, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}

func (c *WebsiteContent) Clone() *WebsiteContent {
	if c == nil {
		return nil
	}
	out := *c
	out.Projects = cloneProjects(c.Projects)
	out.BlogPosts = cloneBlogPosts(c.BlogPosts)
	out.AboutMe = c.AboutMe.Clone()
	out.Home = c.Home.Clone()
	out.Academics = c.Academics.Clone()

	if c.AcademicAchievements != nil {
		out.AcademicAchievements = make([]Achievement, len(c.AcademicAchievements))
		copy(out.AcademicAchievements, c.AcademicAchievements)
	}
	if c.ExtracurricularActivities != nil {
		out.ExtracurricularActivities = make([]Activity, len(c.ExtracurricularActivities))
		copy(out.ExtracurricularActivities, c.ExtracurricularActivities)
	}
	if c.Files != nil {
		out.Files = make([]FileItem, len(c.Files))
		copy(out.Files, c.Files)
	}
	if c.Collaborations != nil {
		out.Collaborations = make([]Collaboration, len(c.Collaborations))
		copy(out.Collaborations, c.Collaborations)
	}
	if c.Volunteering != nil {
		out.Volunteering = make([]Volunteering, len(c.Volunteering))
		copy(out.Volunteering, c.Volunteering)
	}
	if c.Education != nil {
		out.Education = make([]Education, len(c.Education))
		copy(out.Education, c.Education)
	}
	if c.Services != nil {
		out.Services = make([]ServiceItem, len(c.Services))
		copy(out.Services, c.Services)
	}
	return &out
}
