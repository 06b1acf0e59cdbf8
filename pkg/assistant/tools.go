package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
)

// Tool is a read-only accessor over one section of the site document. The
// assistant offers these to the model; tools never mutate content.
type Tool struct {
	Name        string
	Description string
	Call        func(doc *entity.WebsiteContent) (interface{}, error)
}

type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range defaultTools() {
		r.tools[t.Name] = t
	}
	return r
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Describe renders the tool list for the system prompt.
func (r *Registry) Describe() string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %s\n", name, r.tools[name].Description)
	}
	return b.String()
}

type blogPostSummary struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
}

func defaultTools() []Tool {
	return []Tool{
		{
			Name:        "get_projects",
			Description: "List all projects with descriptions, tags and links",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Projects, nil
			},
		},
		{
			Name:        "get_academic_achievements",
			Description: "List academic achievements and awards",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.AcademicAchievements, nil
			},
		},
		{
			Name:        "get_activities",
			Description: "List extracurricular activities and roles",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.ExtracurricularActivities, nil
			},
		},
		{
			Name:        "get_education",
			Description: "List education history",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Education, nil
			},
		},
		{
			Name:        "get_academics",
			Description: "Get course history, exam scores and academic goals",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Academics, nil
			},
		},
		{
			Name:        "get_files",
			Description: "List downloadable files (resume, transcripts, certificates)",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Files, nil
			},
		},
		{
			Name:        "get_volunteering",
			Description: "List volunteering experience",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Volunteering, nil
			},
		},
		{
			Name:        "get_services",
			Description: "List offered services and pricing",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.Services, nil
			},
		},
		{
			Name:        "get_about_me",
			Description: "Get the about-me section with skills and interests",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return doc.AboutMe, nil
			},
		},
		{
			Name:        "get_contact_info",
			Description: "Get contact email and social links",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				return map[string]interface{}{
					"email":   doc.Home.Email,
					"socials": doc.Home.Socials,
				}, nil
			},
		},
		{
			Name:        "get_blog_posts",
			Description: "List published blog posts (titles, excerpts, tags)",
			Call: func(doc *entity.WebsiteContent) (interface{}, error) {
				summaries := make([]blogPostSummary, 0, len(doc.BlogPosts))
				for _, post := range doc.BlogPosts {
					if !post.Published {
						continue
					}
					summaries = append(summaries, blogPostSummary{
						Title:       post.Title,
						Slug:        post.Slug,
						Excerpt:     post.Excerpt,
						Tags:        post.Tags,
						PublishedAt: post.PublishedAt.Format("2006-01-02"),
					})
				}
				return summaries, nil
			},
		},
	}
}
