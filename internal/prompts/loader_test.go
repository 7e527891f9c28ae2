package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	keys := []string{"extract-candidate", "extract-job", "score-match", "draft-invitation"}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get("agents.json", key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("agents.json", "nonexistent-prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-prompt")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract-candidate")
	assert.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("agents.json", "nonexistent-prompt")
	})
}

func TestFormat(t *testing.T) {
	template := "Job:\n{{.Job}}\n\nCandidate:\n{{.Candidate}}"
	result := Format(template, map[string]string{
		"Job":       "Senior Go Engineer",
		"Candidate": "Jane Doe",
	})

	assert.Equal(t, "Job:\nSenior Go Engineer\n\nCandidate:\nJane Doe", result)
	assert.NotContains(t, result, "{{")
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestPromptsCarryPlaceholders(t *testing.T) {
	tests := []struct {
		key          string
		placeholders []string
	}{
		{"extract-candidate", []string{"{{.RawText}}"}},
		{"extract-job", []string{"{{.RawText}}"}},
		{"score-match", []string{"{{.Job}}", "{{.Candidate}}"}},
		{"draft-invitation", []string{"{{.Job}}", "{{.Candidate}}", "{{.InterviewTime}}", "{{.Format}}"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			prompt := MustGet("agents.json", tt.key)
			for _, placeholder := range tt.placeholders {
				assert.True(t, strings.Contains(prompt, placeholder),
					"prompt %s missing placeholder %s", tt.key, placeholder)
			}
		})
	}
}
