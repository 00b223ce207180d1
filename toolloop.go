package gemcore

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ToolExecutor resolves and executes model-requested tool calls. The tool
// package provides a Registry implementation.
type ToolExecutor interface {
	// Tools returns the tool declarations to expose to the model.
	Tools() []Tool

	// Execute runs a single tool call and returns its result. Execution
	// failures should be reported in the result with IsError set rather
	// than aborting the conversation.
	Execute(ctx context.Context, call ToolCall) ToolResult
}

// maxToolRounds bounds the number of model turns in a tool loop so a model
// that keeps requesting calls cannot spin forever.
const maxToolRounds = 8

// GenerateWithTools runs the tool-calling loop: it sends the prompt with
// the executor's tool declarations, executes any calls the model requests,
// feeds the results back, and repeats until the model answers without
// requesting tools. The final response is returned unchanged.
func (c *Client) GenerateWithTools(ctx context.Context, exec ToolExecutor, parts []*genai.Part, opts ...Option) (*genai.GenerateContentResponse, error) {
	callOpts := make([]Option, 0, len(opts)+1)
	callOpts = append(callOpts, opts...)
	callOpts = append(callOpts, WithTools(exec.Tools()...))

	contents := userContents(parts)

	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.generate(ctx, contents, callOpts...)
		if err != nil {
			return nil, err
		}

		calls := ResponseToolCalls(resp)
		if len(calls) == 0 {
			return resp, nil
		}

		c.logger.DebugContext(ctx, "executing tool calls", "round", round, "calls", len(calls))

		// Keep the model turn that requested the calls in the transcript.
		contents = append(contents, resp.Candidates[0].Content)

		results := make([]ToolResult, len(calls))
		for i, call := range calls {
			results[i] = exec.Execute(ctx, call)
		}
		contents = append(contents, &genai.Content{
			Role:  "user",
			Parts: toolResultParts(results),
		})
	}

	return nil, fmt.Errorf("tool loop did not settle after %d rounds", maxToolRounds)
}
