package gemcore

import "google.golang.org/genai"

// ResponseText extracts the text content from a response, skipping thought
// summaries. Returns "" for nil or empty responses.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Thought {
			continue
		}
		text += part.Text
	}
	return text
}

// ResponseThoughts extracts the model's thought summaries from a response.
// Thoughts are only present when thinking was requested with
// WithThinkingLevel or WithThinkingBudget.
func ResponseThoughts(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Thought {
			text += part.Text
		}
	}
	return text
}

// ResponseToolCalls extracts tool invocation requests from a response.
// A non-empty result means the caller should execute the tools and send the
// results back; GenerateWithTools automates that loop.
func ResponseToolCalls(resp *genai.GenerateContentResponse) []ToolCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return extractToolCalls(resp.Candidates[0].Content.Parts)
}
