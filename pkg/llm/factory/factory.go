package factory

import (
	"fmt"

	"github.com/DhairyaS450/personal-website-sub000/pkg/llm"
	"github.com/DhairyaS450/personal-website-sub000/pkg/llm/gemini"
	"github.com/DhairyaS450/personal-website-sub000/pkg/llm/ollama"
)

func NewLLMProvider(provider, geminiAPIKey, ollamaBaseURL, ollamaModel string) (llm.LLMProvider, error) {
	switch provider {
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, ollamaModel), nil
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(geminiAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
