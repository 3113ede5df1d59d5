package constants

import "time"

// DefaultBaseURL is where a locally started vLLM server for the omni model listens.
const DefaultBaseURL = "http://localhost:8002"

// ChatCompletionsPath is appended to the base URL of any OpenAI-compatible service.
const ChatCompletionsPath = "/v1/chat/completions"

// DefaultTimeout bounds the single chat-completion call. Long videos take minutes to process.
const DefaultTimeout = 300 * time.Second

// Example input used when the CLI is started without a video URL and prompt.
const (
	ExampleVideoURL = "https://qianwen-res.oss-cn-beijing.aliyuncs.com/Qwen3-Omni/demo/draw.mp4"
	ExamplePrompt   = "Describe this video in detail, including the visual content and any audio you can hear."
)
