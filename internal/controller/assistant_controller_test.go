package controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/serverutils"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/memory"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
)

// The chat route stays registered when the LLM provider failed to
// initialize; a valid request must get a structured 503, not a panic.
func TestChatWithNilProviderAnswers503(t *testing.T) {
	contentService := service.NewContentService(memory.NewContentRepository(), nil, nil, logger.NopLogger{})
	assistantService := service.NewAssistantService(contentService, nil, logger.NopLogger{})

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewAssistantController(assistantService).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/v1/chat", bytes.NewReader([]byte(`{"message":"hello"}`)))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Equal(t, "Assistant is not available", decodeBody(t, res)["error"])
}
