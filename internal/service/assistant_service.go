package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DhairyaS450/personal-website-sub000/internal/dto"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/pkg/assistant"
	"github.com/DhairyaS450/personal-website-sub000/pkg/llm"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error)
}

type assistantService struct {
	contentService IContentService
	llmProvider    llm.LLMProvider
	registry       *assistant.Registry
	log            logger.ILogger
}

func NewAssistantService(contentService IContentService, llmProvider llm.LLMProvider, log logger.ILogger) IAssistantService {
	return &assistantService{
		contentService: contentService,
		llmProvider:    llmProvider,
		registry:       assistant.NewRegistry(),
		log:            log,
	}
}

const selectionPromptTemplate = `You are the assistant on a personal portfolio website. You answer visitor
questions using the site's own data, fetched through tools.

Available tools:
%s
Reply with a single JSON object and nothing else.
To use a tool: {"tool": "<tool name>"}
To answer directly (greetings, questions unrelated to the site): {"answer": "<your reply>"}

Visitor question: %s`

// Chat runs one tool-selection round trip: the model picks a tool, the tool
// reads the live document, and a second turn produces the grounded answer.
func (s *assistantService) Chat(ctx context.Context, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	// Bootstrap passes a nil provider when the LLM backend is misconfigured.
	if s.llmProvider == nil {
		return nil, apperror.ErrAssistantUnavailable
	}

	selectionPrompt := fmt.Sprintf(selectionPromptTemplate, s.registry.Describe(), req.Message)

	raw, err := s.llmProvider.Generate(ctx, selectionPrompt, llm.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("assistant selection turn: %w", err)
	}

	call := assistant.ParseToolCall(raw)
	if call.Tool == "" {
		return &dto.AssistantChatResponse{Reply: call.Answer}, nil
	}

	tool, ok := s.registry.Get(call.Tool)
	if !ok {
		s.log.Warn("AssistantService", "Model requested unknown tool", map[string]interface{}{"tool": call.Tool})
		return &dto.AssistantChatResponse{Reply: "I couldn't find that information on this site."}, nil
	}

	doc, _, err := s.contentService.Get(ctx)
	if err != nil {
		return nil, err
	}

	result, err := tool.Call(doc)
	if err != nil {
		return nil, err
	}
	resultJson, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	answer, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "Answer the visitor's question using only the site data below. Be concise and friendly. Do not invent facts."},
		{Role: "user", Content: fmt.Sprintf("Question: %s\n\nSite data (%s):\n%s", req.Message, call.Tool, string(resultJson))},
	}, llm.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("assistant answer turn: %w", err)
	}

	s.log.Info("AssistantService", "Answered visitor question", map[string]interface{}{"tool": call.Tool})
	return &dto.AssistantChatResponse{Reply: answer, Tool: call.Tool}, nil
}
