package gemcore

import (
	"encoding/json"

	"google.golang.org/genai"
)

// buildConfig translates resolved Options into the SDK request config.
// Each recognized option lands in exactly one SDK field.
func buildConfig(o *Options) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	if o.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: o.SystemInstruction}},
		}
	}
	if o.Temperature != nil {
		temp := float32(*o.Temperature)
		config.Temperature = &temp
	}
	if o.TopP != nil {
		topP := float32(*o.TopP)
		config.TopP = &topP
	}
	if o.TopK != nil {
		// The SDK models topK as a float even though the API treats it as
		// a token count.
		topK := float32(*o.TopK)
		config.TopK = &topK
	}
	if o.CandidateCount > 0 {
		config.CandidateCount = int32(o.CandidateCount)
	}
	if o.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(o.MaxOutputTokens)
	}
	if len(o.StopSequences) > 0 {
		config.StopSequences = o.StopSequences
	}
	if o.Seed != nil {
		seed := int32(*o.Seed)
		config.Seed = &seed
	}

	if o.ResponseMIMEType != "" {
		config.ResponseMIMEType = o.ResponseMIMEType
	}
	if o.ResponseSchema != nil {
		config.ResponseSchema = convertJSONSchema(o.ResponseSchema)
		if config.ResponseMIMEType == "" {
			// A schema implies structured output.
			config.ResponseMIMEType = "application/json"
		}
	}

	config.ThinkingConfig = buildThinkingConfig(o)

	if len(o.Tools) > 0 {
		config.Tools = convertTools(o.Tools)
		if o.ToolChoice != "" {
			config.ToolConfig = convertToolChoice(o.ToolChoice)
		}
	}

	return config
}

// buildThinkingConfig maps the thinking options onto the SDK's thinking
// config. Gemini 3 models use a level, Gemini 2.5 models use a token
// budget; both include thought summaries in the response.
func buildThinkingConfig(o *Options) *genai.ThinkingConfig {
	switch {
	case o.ThinkingLevel != "":
		cfg := &genai.ThinkingConfig{IncludeThoughts: true}
		switch o.ThinkingLevel {
		case ThinkingHigh:
			cfg.ThinkingLevel = genai.ThinkingLevelHigh
		default:
			cfg.ThinkingLevel = genai.ThinkingLevelLow
		}
		return cfg
	case o.ThinkingBudget != nil:
		budget := int32(*o.ThinkingBudget)
		return &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  &budget,
		}
	default:
		return nil
	}
}

func convertTools(tools []Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		funcs[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  convertJSONSchema(t.Parameters),
		}
	}

	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

func convertToolChoice(choice ToolChoice) *genai.ToolConfig {
	switch choice {
	case ToolChoiceNone:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeNone,
			},
		}
	case ToolChoiceRequired:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAny,
			},
		}
	default:
		return &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}
}

// convertJSONSchema converts a JSON Schema document to the SDK's Schema
// type. Unknown keywords are dropped; the Gemini API rejects schemas with
// unsupported constraints such as additionalProperties.
func convertJSONSchema(schemaJSON json.RawMessage) *genai.Schema {
	if len(schemaJSON) == 0 {
		return nil
	}

	var schema map[string]any
	if err := json.Unmarshal(schemaJSON, &schema); err != nil {
		return nil
	}

	return convertSchemaObject(schema)
}

func convertSchemaObject(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	result := &genai.Schema{}

	if typeVal, ok := schema["type"].(string); ok {
		switch typeVal {
		case "string":
			result.Type = genai.TypeString
		case "number":
			result.Type = genai.TypeNumber
		case "integer":
			result.Type = genai.TypeInteger
		case "boolean":
			result.Type = genai.TypeBoolean
		case "array":
			result.Type = genai.TypeArray
		case "object":
			result.Type = genai.TypeObject
		}
	}

	if desc, ok := schema["description"].(string); ok {
		result.Description = desc
	}

	if enumVal, ok := schema["enum"].([]any); ok {
		for _, e := range enumVal {
			if s, ok := e.(string); ok {
				result.Enum = append(result.Enum, s)
			}
		}
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		result.Properties = make(map[string]*genai.Schema)
		for name, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				result.Properties[name] = convertSchemaObject(propMap)
			}
		}
	}

	if required, ok := schema["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				result.Required = append(result.Required, s)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		result.Items = convertSchemaObject(items)
	}

	return result
}
