package gemcore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"
)

// UnmarshalResponse decodes a structured response into T. Models sometimes
// emit near-JSON (trailing commas, fenced code blocks, unquoted keys); on a
// decode failure the text is repaired with jsonrepair and tried once more.
func UnmarshalResponse[T any](resp *genai.GenerateContentResponse) (T, error) {
	var result T

	text := strings.TrimSpace(ResponseText(resp))
	if text == "" {
		return result, fmt.Errorf("response contains no text to decode")
	}

	if err := json.Unmarshal([]byte(text), &result); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return result, fmt.Errorf("decode response as %T: %w", result, err)
		}
		if err := json.Unmarshal([]byte(repaired), &result); err != nil {
			return result, fmt.Errorf("decode repaired response as %T: %w", result, err)
		}
	}

	return result, nil
}

// GenerateInto generates content constrained to the schema of T and decodes
// the response into it. It combines WithResponseSchemaFor and
// UnmarshalResponse.
func GenerateInto[T any](ctx context.Context, c *Client, parts []*genai.Part, opts ...Option) (T, error) {
	var zero T

	callOpts := make([]Option, 0, len(opts)+1)
	callOpts = append(callOpts, opts...)
	callOpts = append(callOpts, WithResponseSchemaFor[T]())

	resp, err := c.GenerateContent(ctx, parts, callOpts...)
	if err != nil {
		return zero, err
	}

	return UnmarshalResponse[T](resp)
}
