package omni

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/fatih/color"
)

const reportTemplates = `
{{- define "banner" -}}
{{ repeat 80 "=" }}
Qwen3-Omni Service Test Client
{{ repeat 80 "=" }}

{{ end -}}

{{- define "request" -}}
🔄 Sending request to {{ .Endpoint }}
📹 Video URL: {{ .VideoURL }}
💬 Prompt: {{ .Prompt }}
{{ repeat 80 "-" }}
{{ end -}}

{{- define "caption" -}}
{{ repeat 80 "-" }}
📝 Generated Caption:
{{ . }}
{{ repeat 80 "-" }}
{{ end -}}

{{- define "usage" -}}
📊 Usage Stats:
   Prompt tokens: {{ .PromptTokens | default "N/A" }}
   Completion tokens: {{ .CompletionTokens | default "N/A" }}
   Total tokens: {{ .TotalTokens | default "N/A" }}
{{ end -}}
`

var reportTemplate = template.Must(template.New("report").Funcs(sprig.TxtFuncMap()).Parse(reportTemplates))

// Reporter prints the human-readable progress of a run
type Reporter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Banner prints the program header
func (r *Reporter) Banner() {
	r.render("banner", nil)
}

// Printf writes an uncolored line
func (r *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) RequestStarted(endpoint string, request Request) {
	r.render("request", map[string]string{
		"Endpoint": endpoint,
		"VideoURL": request.VideoURL,
		"Prompt":   request.Prompt,
	})
}

func (r *Reporter) Success(stripped bool) {
	if stripped {
		r.success.Fprintln(r.out, "✅ Response received! (Thinking tags removed)")
		return
	}
	r.success.Fprintln(r.out, "✅ Response received! (Raw output with thinking)")
}

func (r *Reporter) Caption(text string) {
	r.render("caption", text)
}

// Usage prints the token counts, N/A for any the service left out
func (r *Reporter) Usage(usage *Usage) {
	r.render("usage", map[string]string{
		"PromptTokens":     formatCount(usage.PromptTokens),
		"CompletionTokens": formatCount(usage.CompletionTokens),
		"TotalTokens":      formatCount(usage.TotalTokens),
	})
}

func (r *Reporter) TokensSaved(saved int) {
	fmt.Fprintf(r.out, "   💡 Estimated tokens saved: ~%d (by removing thinking)\n", saved)
}

func (r *Reporter) Failure(message string) {
	r.failure.Fprintf(r.out, "❌ %s\n", message)
}

// RawPayload dumps a response body for inspection, indented when it is JSON
func (r *Reporter) RawPayload(body string) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, []byte(body), "", "  "); err != nil {
		fmt.Fprintln(r.out, body)
		return
	}
	fmt.Fprintln(r.out, indented.String())
}

func (r *Reporter) render(name string, data interface{}) {
	if err := reportTemplate.ExecuteTemplate(r.out, name, data); err != nil {
		log.WithError(err).WithField("template", name).Error("Failed to render report")
	}
}

// formatCount prints a count as the service sent it; whole JSON numbers lose their ".0"
func formatCount(count interface{}) string {
	switch v := count.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
