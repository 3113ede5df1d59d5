package omni

// ChatCompletionRequest is the body POSTed to /v1/chat/completions.
// top_k is not part of the OpenAI API but vLLM accepts it as an extra sampling parameter.
type ChatCompletionRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	TopK        int           `json:"top_k"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatMessage is a single message with multimodal content parts
type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart is either a video reference or a text part, selected by Type
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	VideoURL *VideoURL `json:"video_url,omitempty"`
}

type VideoURL struct {
	URL string `json:"url"`
}

// ChatCompletionResponse holds the only part of the response that has to
// match a schema. Everything else is read from the decoded payload map.
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message *ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Content string `json:"content"`
}

// Usage reports token counts as the service sent them. A nil field means the
// service left that count out.
type Usage struct {
	PromptTokens     interface{}
	CompletionTokens interface{}
	TotalTokens      interface{}
}

// usageFromPayload reads the usage object leniently; a missing or malformed
// usage object is treated as absent.
func usageFromPayload(payload map[string]interface{}) *Usage {
	usage, ok := payload["usage"].(map[string]interface{})
	if !ok {
		return nil
	}
	return &Usage{
		PromptTokens:     usage["prompt_tokens"],
		CompletionTokens: usage["completion_tokens"],
		TotalTokens:      usage["total_tokens"],
	}
}
