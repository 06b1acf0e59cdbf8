package entity

type Course struct {
	Subject string `json:"subject"`
	Code    string `json:"code"`
}

type GradeSection struct {
	Title   string   `json:"title"`
	Status  string   `json:"status"`
	Courses []Course `json:"courses"`
}

type ExamScore struct {
	Name        string   `json:"name"`
	Score       string   `json:"score"`
	MaxScore    string   `json:"maxScore"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type AcademicsContent struct {
	Title                string         `json:"title"`
	Subtitle             string         `json:"subtitle"`
	CourseHistory        []GradeSection `json:"courseHistory"`
	ExamScores           []ExamScore    `json:"examScores"`
	AcademicAchievements []string       `json:"academicAchievements"`
	AcademicGoals        []string       `json:"academicGoals"`
}

func (g GradeSection) Clone() GradeSection {
	c := g
	if g.Courses != nil {
		c.Courses = make([]Course, len(g.Courses))
		copy(c.Courses, g.Courses)
	}
	return c
}

func (e ExamScore) Clone() ExamScore {
	c := e
	c.Highlights = cloneStrings(e.Highlights)
	return c
}

func (a AcademicsContent) Clone() AcademicsContent {
	c := a
	if a.CourseHistory != nil {
		c.CourseHistory = make([]GradeSection, len(a.CourseHistory))
		for i, g := range a.CourseHistory {
			c.CourseHistory[i] = g.Clone()
		}
	}
	if a.ExamScores != nil {
		c.ExamScores = make([]ExamScore, len(a.ExamScores))
		for i, e := range a.ExamScores {
			c.ExamScores[i] = e.Clone()
		}
	}
	c.AcademicAchievements = cloneStrings(a.AcademicAchievements)
	c.AcademicGoals = cloneStrings(a.AcademicGoals)
	return c
}
