package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/memory"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"
)

const testAdminToken = "test-admin-token"

func newContentTestApp(t *testing.T) (*fiber.App, *memory.ContentRepository) {
	t.Helper()

	repo := memory.NewContentRepository()
	contentService := service.NewContentService(repo, nil, nil, logger.NopLogger{})
	issuer := credential.NewSharedTokenIssuer("admin123", "", testAdminToken)

	app := fiber.New()
	NewContentController(contentService, issuer, nil, logger.NopLogger{}).RegisterRoutes(app)
	return app, repo
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGetContentNotFound(t *testing.T) {
	app, _ := newContentTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Content not found", decodeBody(t, res)["error"])
}

func TestGetContentReturnsDocument(t *testing.T) {
	app, repo := newContentTestApp(t)
	_, err := repo.Replace(context.Background(), &entity.WebsiteContent{
		Home: entity.HomeContent{Headline: "Hi"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	var doc entity.WebsiteContent
	require.NoError(t, json.NewDecoder(res.Body).Decode(&doc))
	assert.Equal(t, "Hi", doc.Home.Headline)
}

func TestPutContentWithoutAuthHeader(t *testing.T) {
	app, repo := newContentTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/content", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Unauthorized", decodeBody(t, res)["error"])

	// The store must be untouched on a rejected write.
	_, _, err = repo.Fetch(context.Background())
	assert.Error(t, err)
}

func TestPutContentWithBadToken(t *testing.T) {
	app, _ := newContentTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/content", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-the-token")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid token", decodeBody(t, res)["error"])
}

func TestPutContentRejectsNonObjectBodies(t *testing.T) {
	app, repo := newContentTestApp(t)

	for _, payload := range []string{`null`, `"a string"`, `42`, `[1,2]`, ``, `{broken`} {
		req := httptest.NewRequest(http.MethodPut, "/content", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+testAdminToken)
		res, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "payload %q", payload)
		assert.Equal(t, "Invalid content format", decodeBody(t, res)["error"], "payload %q", payload)
	}

	_, _, err := repo.Fetch(context.Background())
	assert.Error(t, err, "no rejected payload may reach the store")
}

func TestPutContentRoundTrip(t *testing.T) {
	app, repo := newContentTestApp(t)

	doc := entity.WebsiteContent{
		Home:     entity.HomeContent{Headline: "Updated"},
		Projects: []entity.Project{{Id: 1, Title: "P1"}},
	}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/content", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, decodeBody(t, res)["success"])

	stored, _, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.Home.Headline)
	require.Len(t, stored.Projects, 1)
	assert.Equal(t, "P1", stored.Projects[0].Title)
}

func TestPutIsWholeDocumentReplace(t *testing.T) {
	app, repo := newContentTestApp(t)
	_, err := repo.Replace(context.Background(), &entity.WebsiteContent{
		Projects:  []entity.Project{{Id: 1, Title: "Old"}},
		BlogPosts: []entity.BlogPost{{Id: "a", Title: "Post"}},
	})
	require.NoError(t, err)

	// A document missing blogPosts wipes them: replace is last-writer-wins
	// over the whole tree.
	req := httptest.NewRequest(http.MethodPut, "/content", bytes.NewReader([]byte(`{"projects":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	stored, _, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored.Projects)
	assert.Empty(t, stored.BlogPosts)
}
