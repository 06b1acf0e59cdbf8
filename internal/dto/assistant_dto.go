package dto

type AssistantChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type AssistantChatResponse struct {
	Reply string `json:"reply"`
	Tool  string `json:"tool,omitempty"` // which site section grounded the answer
}
