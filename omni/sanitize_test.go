package omni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripThinking(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No reasoning tags",
			input:    "This is a test content without reasoning tags.",
			expected: "This is a test content without reasoning tags.",
		},
		{
			name:     "Think block before answer",
			input:    "<think>anything</think>Hello",
			expected: "Hello",
		},
		{
			name:     "Reasoning tags at the start",
			input:    "<think>Start reasoning</think>\n\nContent      \n\n",
			expected: "Content",
		},
		{
			name:     "Reasoning tags in the middle",
			input:    "Before text <think>Some reasoning here</think> After text",
			expected: "Before text  After text",
		},
		{
			name:     "Multiple lines with reasoning",
			input:    "Line 1\n<think>Reasoning\nMultiple lines\nOf thinking</think>\nLine 2",
			expected: "Line 1\n\nLine 2",
		},
		{
			name:     "Tags are matched case-insensitively",
			input:    "<THINK>Loud thoughts</Think>Result",
			expected: "Result",
		},
		{
			name:     "Each think block ends at its own closing tag",
			input:    "<think>a</think>keep<think>b</think> end",
			expected: "keep end",
		},
		{
			name:     "Reasoning block",
			input:    "<reasoning>First I look at the frames.\nThen the audio.</reasoning>\nA man draws a cat.",
			expected: "A man draws a cat.",
		},
		{
			name:     "Answer marker",
			input:    "blah blah Answer: 42",
			expected: "42",
		},
		{
			name:     "Final answer marker with extra blank lines",
			input:    "Final Answer:   done\n\n\nmore",
			expected: "done\n\nmore",
		},
		{
			name:     "Lowercase marker with space before colon",
			input:    "thinking out loud... final answer : yes",
			expected: "yes",
		},
		{
			name:     "Only the first answer marker is used",
			input:    "Answer: first Answer: second",
			expected: "first Answer: second",
		},
		{
			name:     "Answer marker inside think block is removed first",
			input:    "<think>The answer: maybe 3</think>Final Answer: 4",
			expected: "4",
		},
		{
			name:     "Thinking code fence",
			input:    "Intro\n```thinking\nhmm\n```\nResult",
			expected: "Intro\n\nResult",
		},
		{
			name:     "Other code fences are kept",
			input:    "```go\nfmt.Println()\n```",
			expected: "```go\nfmt.Println()\n```",
		},
		{
			name:     "Whitespace-only lines collapse",
			input:    "a\n \n\n  \nb",
			expected: "a\n\nb",
		},
		{
			name:     "Lines holding only non-breaking spaces collapse",
			input:    "a\n\u00a0\n\u00a0\nb",
			expected: "a\n\nb",
		},
		{
			name:     "Vertical tab line collapses",
			input:    "a\n\v\nb",
			expected: "a\n\nb",
		},
		{
			name:     "Unicode spaces around the answer marker",
			input:    "notes Final\u00a0Answer\u2009:\u3000yes",
			expected: "yes",
		},
		{
			name:     "Empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "Only reasoning tags",
			input:    "<think>Just reasoning</think>",
			expected: "",
		},
		{
			name:     "Unclosed think tag",
			input:    "Content <think>Unclosed reasoning",
			expected: "Content <think>Unclosed reasoning",
		},
		{
			name:     "Only closing tag",
			input:    "Content </think>",
			expected: "Content </think>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := StripThinking(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestStripThinking_NoMarkupIsTrimmed(t *testing.T) {
	inputs := []string{
		"  hello world \n",
		"\tA video of a person drawing.\n",
		"single line",
		"line one\nline two\n\n",
	}
	for _, input := range inputs {
		assert.Equal(t, strings.TrimSpace(input), StripThinking(input))
	}
}

func TestStripThinking_Idempotent(t *testing.T) {
	inputs := []string{
		"<think>anything</think>Hello",
		"blah blah Answer: 42",
		"Final Answer:   done\n\n\nmore",
		"<reasoning>r</reasoning>\n\n\nA cat\n\n\n\nsits",
		"plain  text  ",
	}
	for _, input := range inputs {
		once := StripThinking(input)
		assert.Equal(t, once, StripThinking(once), "input: %q", input)
	}
}

// A second answer marker survives the first pass, so another pass cuts again.
func TestStripThinking_RepeatedMarkerNotIdempotent(t *testing.T) {
	once := StripThinking("Answer: a Answer: b")
	assert.Equal(t, "a Answer: b", once)
	assert.Equal(t, "b", StripThinking(once))
}

func TestEstimateTokensSaved(t *testing.T) {
	assert.Equal(t, 3, EstimateTokensSaved("<think>a b c</think> d e", "d e"))
	assert.Equal(t, 0, EstimateTokensSaved("same words", "same words"))
	assert.Equal(t, 0, EstimateTokensSaved("", ""))
}
