package gemcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func responseWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}

func TestResponseText(t *testing.T) {
	t.Run("concatenates text parts", func(t *testing.T) {
		resp := responseWithParts(
			&genai.Part{Text: "Hello, "},
			&genai.Part{Text: "world"},
		)
		assert.Equal(t, "Hello, world", ResponseText(resp))
	})

	t.Run("skips thought parts", func(t *testing.T) {
		resp := responseWithParts(
			&genai.Part{Text: "Let me think...", Thought: true},
			&genai.Part{Text: "42"},
		)
		assert.Equal(t, "42", ResponseText(resp))
	})

	t.Run("empty for nil response", func(t *testing.T) {
		assert.Empty(t, ResponseText(nil))
		assert.Empty(t, ResponseText(&genai.GenerateContentResponse{}))
	})
}

func TestResponseThoughts(t *testing.T) {
	resp := responseWithParts(
		&genai.Part{Text: "Let me think...", Thought: true},
		&genai.Part{Text: "42"},
	)
	assert.Equal(t, "Let me think...", ResponseThoughts(resp))
	assert.Empty(t, ResponseThoughts(nil))
}

func TestResponseToolCalls(t *testing.T) {
	resp := responseWithParts(
		&genai.Part{FunctionCall: &genai.FunctionCall{ID: "c1", Name: "search", Args: map[string]any{"q": "go"}}},
	)

	calls := ResponseToolCalls(resp)
	require.Len(t, calls, 1)
	assert.Equal(t, "search", calls[0].Name)

	assert.Nil(t, ResponseToolCalls(nil))
	assert.Nil(t, ResponseToolCalls(&genai.GenerateContentResponse{}))
}
