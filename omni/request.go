package omni

import "fmt"

// Default sampling parameters recommended for the omni thinking models
const (
	DefaultTemperature = 0.6
	DefaultTopP        = 0.95
	DefaultTopK        = 20
	DefaultMaxTokens   = 16384
)

// Request describes one video captioning call. Sampling parameters are
// passed through to the service as-is; the service rejects invalid values.
type Request struct {
	VideoURL    string
	Prompt      string
	Model       string
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
}

// NewRequest creates a Request with the default sampling parameters
func NewRequest(videoURL, prompt string) (Request, error) {
	if videoURL == "" {
		return Request{}, fmt.Errorf("video URL must not be empty")
	}
	if prompt == "" {
		return Request{}, fmt.Errorf("prompt must not be empty")
	}
	return Request{
		VideoURL:    videoURL,
		Prompt:      prompt,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		TopK:        DefaultTopK,
		MaxTokens:   DefaultMaxTokens,
	}, nil
}

// payload builds the chat-completion body: a single user message carrying
// the video reference followed by the prompt.
func (r Request) payload() ChatCompletionRequest {
	return ChatCompletionRequest{
		Model: r.Model,
		Messages: []ChatMessage{
			{
				Role: "user",
				Content: []ContentPart{
					{Type: "video_url", VideoURL: &VideoURL{URL: r.VideoURL}},
					{Type: "text", Text: r.Prompt},
				},
			},
		},
		Temperature: r.Temperature,
		TopP:        r.TopP,
		TopK:        r.TopK,
		MaxTokens:   r.MaxTokens,
	}
}
