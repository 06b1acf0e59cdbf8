package draft

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/pkg/content"
)

func testDocument() *entity.WebsiteContent {
	return &entity.WebsiteContent{
		Projects: []entity.Project{{Id: 1, Title: "P1", Tags: []string{"go"}}},
		Academics: entity.AcademicsContent{
			Title:         "Academics",
			AcademicGoals: []string{"g1"},
			CourseHistory: []entity.GradeSection{
				{Title: "Grade 10", Courses: []entity.Course{{Subject: "Math", Code: "MPM2D"}}},
			},
		},
		BlogPosts: []entity.BlogPost{{Id: "p1", Title: "T", Slug: "t", Published: true}},
	}
}

// newTestSession serves doc and records PUT bodies. The returned counters
// observe commit traffic.
func newTestSession(t *testing.T, doc *entity.WebsiteContent, puts *int, lastPut *entity.WebsiteContent) *content.Session {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/content":
			json.NewEncoder(w).Encode(doc)
		case r.Method == http.MethodPut && r.URL.Path == "/content":
			*puts++
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, lastPut))
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	store := &content.MemoryStore{}
	require.NoError(t, store.Save("test-token"))
	session := content.NewSession(content.NewClient(srv.URL), store)
	session.Load(context.Background())
	require.NoError(t, session.Err())
	return session
}

func TestEditModeFlushCommitsOnce(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewAcademicsPage(session)
	ctx := context.Background()

	require.True(t, page.SetEditMode(ctx, true))
	page.AddGoal("g2")
	assert.Zero(t, puts, "edits must not commit until edit mode turns off")

	require.True(t, page.SetEditMode(ctx, false))

	assert.Equal(t, 1, puts)
	assert.Equal(t, []string{"g1", "g2"}, committed.Academics.AcademicGoals)

	// Untouched sections ride through the full-document replace unchanged.
	original := testDocument()
	assert.Equal(t, original.Projects, committed.Projects)
	assert.Equal(t, original.BlogPosts, committed.BlogPosts)
	assert.Equal(t, original.Academics.CourseHistory, committed.Academics.CourseHistory)
}

func TestEditModeOffWithoutEditsDoesNotCommit(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewAcademicsPage(session)
	ctx := context.Background()

	require.True(t, page.SetEditMode(ctx, true))
	require.True(t, page.SetEditMode(ctx, false))

	assert.Zero(t, puts)
}

func TestDiscardThenExitDoesNotCommit(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewAcademicsPage(session)
	ctx := context.Background()

	page.SetEditMode(ctx, true)
	page.SetTitle("scratch")
	page.Discard()
	require.True(t, page.SetEditMode(ctx, false))

	assert.Zero(t, puts)
	assert.Equal(t, "Academics", page.Academics().Title)
}

func TestSetCourseCodeThroughPath(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewAcademicsPage(session)
	ctx := context.Background()

	page.SetEditMode(ctx, true)
	require.NoError(t, page.SetCourseCode(0, 0, "MCR3U"))
	require.True(t, page.SetEditMode(ctx, false))

	assert.Equal(t, 1, puts)
	assert.Equal(t, "MCR3U", committed.Academics.CourseHistory[0].Courses[0].Code)
	// The session snapshot advanced to the committed document.
	assert.Equal(t, "MCR3U", session.Content().Academics.CourseHistory[0].Courses[0].Code)
}

func TestBlogRetitleRecomputesSlugInDraft(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewBlogPage(session)
	ctx := context.Background()

	page.SetEditMode(ctx, true)
	page.Retitle("p1", "Getting Started!! With Next.js")
	require.True(t, page.SetEditMode(ctx, false))

	require.Equal(t, 1, puts)
	require.Len(t, committed.BlogPosts, 1)
	assert.Equal(t, "getting-started-with-nextjs", committed.BlogPosts[0].Slug)
}

func TestProjectAddEnforcesUniqueIds(t *testing.T) {
	puts := 0
	var committed entity.WebsiteContent
	session := newTestSession(t, testDocument(), &puts, &committed)

	page := NewProjectsPage(session)
	ctx := context.Background()

	page.SetEditMode(ctx, true)
	assert.Error(t, page.Add(entity.Project{Id: 1, Title: "Dup"}))
	require.NoError(t, page.Add(entity.Project{Id: 2, Title: "New"}))
	require.True(t, page.SetEditMode(ctx, false))

	require.Equal(t, 1, puts)
	assert.Len(t, committed.Projects, 2)
}
