package content

import (
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
)

// DefaultContent is the built-in document used when the store has never
// been seeded or a fetch fails. The seed command writes this exact document
// on first run, so a fresh deployment and a degraded one render the same.
func DefaultContent() *entity.WebsiteContent {
	return &entity.WebsiteContent{
		Home: entity.HomeContent{
			Headline:    "Hi, I'm Dhairya",
			Subheadline: "Student, developer and lifelong learner",
			Intro:       "I build web apps, study hard, and write about what I learn along the way.",
			Email:       "hello@example.com",
			Socials: []entity.SocialLink{
				{Platform: "github", Url: "https://github.com/DhairyaS450"},
				{Platform: "linkedin", Url: "https://linkedin.com/in/dhairya"},
			},
		},
		AboutMe: entity.AboutMe{
			Title:       "About Me",
			Description: "High school student passionate about software, math and science.",
			Skills:      []string{"TypeScript", "Python", "React", "Go"},
			Interests:   []string{"Chess", "Badminton", "Reading"},
		},
		Projects: []entity.Project{
			{
				Id:          1,
				Title:       "Study Buddy",
				Description: "An AI-powered study planner for students.",
				Image:       "/images/projects/study-buddy.png",
				Tags:        []string{"Next.js", "AI"},
				GithubUrl:   "https://github.com/DhairyaS450/study-buddy",
				LiveUrl:     "https://studybuddy.example.com",
			},
			{
				Id:          2,
				Title:       "Personal Website",
				Description: "This site: portfolio, blog and an in-place content editor.",
				Image:       "/images/projects/personal-website.png",
				Tags:        []string{"Go", "Fiber", "PostgreSQL"},
				GithubUrl:   "https://github.com/DhairyaS450/personal-website",
				LiveUrl:     "",
			},
		},
		AcademicAchievements: []entity.Achievement{
			{Id: 1, Title: "Honour Roll", Description: "Maintained 95%+ average", Year: "2024"},
		},
		ExtracurricularActivities: []entity.Activity{
			{Id: 1, Title: "Coding Club", Role: "President", Description: "Weekly workshops on web development", Years: "2023-2025"},
		},
		Files: []entity.FileItem{
			{Id: 1, Name: "Resume", Url: "/files/resume.pdf", Category: "documents"},
		},
		Collaborations: []entity.Collaboration{},
		Volunteering: []entity.Volunteering{
			{Id: 1, Organization: "Local Library", Role: "Tutor", Description: "Math tutoring for middle schoolers", Hours: 40},
		},
		Education: []entity.Education{
			{Id: 1, School: "Example Secondary School", Program: "High School Diploma", Years: "2022-2026", Description: "Focus on STEM courses"},
		},
		Academics: entity.AcademicsContent{
			Title:    "Academics",
			Subtitle: "Courses, scores and goals",
			CourseHistory: []entity.GradeSection{
				{
					Title:  "Grade 10",
					Status: "completed",
					Courses: []entity.Course{
						{Subject: "Math", Code: "MPM2D"},
						{Subject: "Science", Code: "SNC2D"},
					},
				},
			},
			ExamScores: []entity.ExamScore{
				{
					Name:        "CCC",
					Score:       "58",
					MaxScore:    "75",
					Year:        "2025",
					Description: "Canadian Computing Competition, Junior",
					Highlights:  []string{"Top 25% nationally"},
				},
			},
			AcademicAchievements: []string{"Math contest school champion"},
			AcademicGoals:        []string{"Finish calculus early", "Qualify for CCC Senior honour roll"},
		},
		BlogPosts: []entity.BlogPost{
			{
				Id:          "seed-welcome",
				Title:       "Welcome to my site",
				Slug:        "welcome-to-my-site",
				Content:     "<p>First post. More coming soon.</p>",
				Excerpt:     "First post.",
				PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Tags:        []string{"meta"},
				Published:   true,
			},
		},
		Services: []entity.ServiceItem{
			{Id: 1, Title: "Tutoring", Description: "Math and computer science tutoring", Price: "$20/hr"},
		},
	}
}
