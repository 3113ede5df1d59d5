package omni

import (
	"regexp"
	"strings"
)

// space is any Unicode whitespace. RE2's \s only covers ASCII.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

var (
	thinkTagPattern      = regexp.MustCompile(`(?is)<think>.*?</think>`)
	reasoningTagPattern  = regexp.MustCompile(`(?is)<reasoning>.*?</reasoning>`)
	answerMarkerPattern  = regexp.MustCompile(`(?is)(?:Final` + space + `+)?Answer` + space + `*:` + space + `*(.*)`)
	thinkingFencePattern = regexp.MustCompile("(?is)```thinking.*?```")
	blankLinesPattern    = regexp.MustCompile(`\n` + space + `*\n`)
)

// StripThinking removes the reasoning a model emits before its final answer.
// Rules are applied once and in order: <think> blocks, <reasoning> blocks,
// everything up to the first "Answer:" or "Final Answer:" marker, ```thinking
// fences, repeated blank lines. The result is trimmed.
func StripThinking(text string) string {
	text = thinkTagPattern.ReplaceAllString(text, "")
	text = reasoningTagPattern.ReplaceAllString(text, "")

	if match := answerMarkerPattern.FindStringSubmatch(text); match != nil {
		text = match[1]
	}

	text = thinkingFencePattern.ReplaceAllString(text, "")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// EstimateTokensSaved approximates how many tokens stripping removed by
// comparing whitespace-delimited word counts. It is not a tokenizer count.
func EstimateTokensSaved(raw, cleaned string) int {
	return len(strings.Fields(raw)) - len(strings.Fields(cleaned))
}
