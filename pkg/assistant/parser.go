package assistant

import (
	"encoding/json"
	"strings"
)

// ToolCall is the model's selection of a tool, or a direct answer when no
// tool is needed.
type ToolCall struct {
	Tool   string `json:"tool"`
	Answer string `json:"answer"`
}

// ParseToolCall extracts a tool selection from raw model output. Models wrap
// JSON in prose and code fences; we locate the outermost object and try to
// decode it. Anything undecodable is treated as a direct answer.
func ParseToolCall(raw string) *ToolCall {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return &ToolCall{Answer: strings.TrimSpace(raw)}
	}

	var call ToolCall
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &call); err != nil {
		return &ToolCall{Answer: strings.TrimSpace(raw)}
	}
	if call.Tool == "" && call.Answer == "" {
		return &ToolCall{Answer: strings.TrimSpace(raw)}
	}
	return &call
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
