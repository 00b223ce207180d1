package gemcore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExtractToolCalls(t *testing.T) {
	t.Run("extracts calls with arguments", func(t *testing.T) {
		parts := []*genai.Part{
			{Text: "thinking about it"},
			{FunctionCall: &genai.FunctionCall{
				ID:   "call-1",
				Name: "get_weather",
				Args: map[string]any{"city": "Paris"},
			}},
		}

		calls := extractToolCalls(parts)
		require.Len(t, calls, 1)
		assert.Equal(t, "call-1", calls[0].ID)
		assert.Equal(t, "get_weather", calls[0].Name)

		var args map[string]any
		require.NoError(t, json.Unmarshal([]byte(calls[0].Arguments), &args))
		assert.Equal(t, "Paris", args["city"])
	})

	t.Run("generates an id when the API omits one", func(t *testing.T) {
		parts := []*genai.Part{
			{FunctionCall: &genai.FunctionCall{Name: "search"}},
		}

		calls := extractToolCalls(parts)
		require.Len(t, calls, 1)
		assert.NotEmpty(t, calls[0].ID)
		assert.Contains(t, calls[0].ID, "call-")
	})

	t.Run("no calls in text-only parts", func(t *testing.T) {
		assert.Nil(t, extractToolCalls([]*genai.Part{{Text: "just text"}}))
	})
}

func TestToolResultParts(t *testing.T) {
	t.Run("json content passes through", func(t *testing.T) {
		parts := toolResultParts([]ToolResult{{
			ToolCallID: "call-1",
			Name:       "get_weather",
			Content:    `{"temp": 21}`,
		}})

		require.Len(t, parts, 1)
		fr := parts[0].FunctionResponse
		require.NotNil(t, fr)
		assert.Equal(t, "call-1", fr.ID)
		assert.Equal(t, "get_weather", fr.Name)
		assert.Equal(t, float64(21), fr.Response["temp"])
	})

	t.Run("plain text is wrapped", func(t *testing.T) {
		parts := toolResultParts([]ToolResult{{
			ToolCallID: "call-1",
			Name:       "search",
			Content:    "nothing found",
		}})

		require.Len(t, parts, 1)
		assert.Equal(t, "nothing found", parts[0].FunctionResponse.Response["result"])
	})

	t.Run("errors are reported under an error key", func(t *testing.T) {
		parts := toolResultParts([]ToolResult{{
			ToolCallID: "call-1",
			Name:       "search",
			Content:    "connection refused",
			IsError:    true,
		}})

		require.Len(t, parts, 1)
		assert.Equal(t, "connection refused", parts[0].FunctionResponse.Response["error"])
	})
}
