package omni

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Banner(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out).Banner()

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, strings.Repeat("=", 80), lines[0])
	assert.Equal(t, "Qwen3-Omni Service Test Client", lines[1])
	assert.Equal(t, strings.Repeat("=", 80), lines[2])
}

func TestReporter_Usage(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out).Usage(&Usage{TotalTokens: 42.0})

	assert.Contains(t, out.String(), "Prompt tokens: N/A")
	assert.Contains(t, out.String(), "Completion tokens: N/A")
	assert.Contains(t, out.String(), "Total tokens: 42")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "", formatCount(nil))
	assert.Equal(t, "10", formatCount(10.0))
	assert.Equal(t, "10.5", formatCount(10.5))
	assert.Equal(t, "many", formatCount("many"))
}

func TestReporter_RawPayload(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out)

	reporter.RawPayload(`{"choices":[]}`)
	assert.Equal(t, "{\n  \"choices\": []\n}\n", out.String())

	out.Reset()
	reporter.RawPayload("not json")
	assert.Equal(t, "not json\n", out.String())
}
