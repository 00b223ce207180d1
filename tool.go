package gemcore

import (
	"encoding/json"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Tool defines a function that can be called by the model.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string
	// Description explains what the tool does (helps the model decide when to use it).
	Description string
	// Parameters is a JSON Schema object defining the function parameters.
	Parameters json.RawMessage
}

// ToolCall represents a request from the model to invoke a tool.
type ToolCall struct {
	// ID uniquely identifies this call. The Gemini API may omit it, in
	// which case one is generated so results can still be correlated.
	ID string `json:"id"`
	// Name is the name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is a JSON object string with the call arguments.
	Arguments string `json:"arguments"`
}

// ToolResult represents the outcome of executing a tool call.
type ToolResult struct {
	// ToolCallID matches the ID of the corresponding ToolCall.
	ToolCallID string `json:"toolCallId"`
	// Name is the name of the tool that produced the result.
	Name string `json:"name"`
	// Content is the result payload returned to the model. JSON object
	// strings are passed through; anything else is wrapped as {"result": ...}.
	Content string `json:"content"`
	// IsError marks the result as a failed execution.
	IsError bool `json:"isError,omitempty"`
}

// ToolChoice controls how the model uses tools.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide when to use tools (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables tool use for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces the model to use a tool.
	ToolChoiceRequired ToolChoice = "required"
)

// extractToolCalls pulls function calls out of response parts.
func extractToolCalls(parts []*genai.Part) []ToolCall {
	var calls []ToolCall
	for _, part := range parts {
		if part.FunctionCall == nil {
			continue
		}
		args, _ := json.Marshal(part.FunctionCall.Args)
		id := part.FunctionCall.ID
		if id == "" {
			id = "call-" + uuid.New().String()
		}
		calls = append(calls, ToolCall{
			ID:        id,
			Name:      part.FunctionCall.Name,
			Arguments: string(args),
		})
	}
	return calls
}

// toolResultParts converts tool results into FunctionResponse parts for the
// next model turn.
func toolResultParts(results []ToolResult) []*genai.Part {
	parts := make([]*genai.Part, 0, len(results))
	for _, tr := range results {
		var response map[string]any
		if err := json.Unmarshal([]byte(tr.Content), &response); err != nil {
			response = map[string]any{"result": tr.Content}
		}
		if tr.IsError {
			response = map[string]any{"error": tr.Content}
		}
		parts = append(parts, &genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				ID:       tr.ToolCallID,
				Name:     tr.Name,
				Response: response,
			},
		})
	}
	return parts
}
