package gemcore

import "encoding/json"

// ThinkingLevel controls the depth of the model's internal reasoning on
// models that support level-based thinking (Gemini 3 and later).
type ThinkingLevel string

const (
	ThinkingLow  ThinkingLevel = "low"
	ThinkingHigh ThinkingLevel = "high"
)

// Options contains per-request generation configuration. Each recognized
// option maps to exactly one field of the SDK request config; see
// buildConfig for the translation.
type Options struct {
	Model             string
	Temperature       *float64
	TopP              *float64
	TopK              *int
	CandidateCount    int
	MaxOutputTokens   int
	StopSequences     []string
	Seed              *int
	ResponseMIMEType  string
	ResponseSchema    json.RawMessage
	ThinkingLevel     ThinkingLevel
	ThinkingBudget    *int
	Tools             []Tool
	ToolChoice        ToolChoice
	SystemInstruction string
}

// Option is a functional option for configuring generation requests.
type Option func(*Options)

// WithModel overrides the client's default model for this request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTopP sets the nucleus sampling probability mass.
func WithTopP(p float64) Option {
	return func(o *Options) {
		o.TopP = &p
	}
}

// WithTopK sets the maximum number of tokens considered when sampling.
func WithTopK(k int) Option {
	return func(o *Options) {
		o.TopK = &k
	}
}

// WithCandidateCount sets the number of generated responses to return.
func WithCandidateCount(n int) Option {
	return func(o *Options) {
		o.CandidateCount = n
	}
}

// WithMaxOutputTokens sets the maximum number of tokens in a candidate.
func WithMaxOutputTokens(n int) Option {
	return func(o *Options) {
		o.MaxOutputTokens = n
	}
}

// WithStopSequences sets the character sequences that stop generation.
func WithStopSequences(sequences ...string) Option {
	return func(o *Options) {
		o.StopSequences = sequences
	}
}

// WithSeed sets the random seed for reproducible sampling.
func WithSeed(seed int) Option {
	return func(o *Options) {
		o.Seed = &seed
	}
}

// WithResponseMIMEType sets the output MIME type (e.g. "application/json").
func WithResponseMIMEType(mimeType string) Option {
	return func(o *Options) {
		o.ResponseMIMEType = mimeType
	}
}

// WithResponseSchema constrains the response to the given JSON Schema.
// Setting a schema without an explicit MIME type implies "application/json".
func WithResponseSchema(schema json.RawMessage) Option {
	return func(o *Options) {
		o.ResponseSchema = schema
	}
}

// WithResponseSchemaFor constrains the response to a schema reflected from
// the struct type T. See SchemaFor for the supported struct tags.
func WithResponseSchemaFor[T any]() Option {
	return func(o *Options) {
		o.ResponseSchema = MustSchemaFor[T]()
	}
}

// WithThinkingLevel requests level-based thinking and includes thought
// summaries in responses. Mutually exclusive with WithThinkingBudget.
func WithThinkingLevel(level ThinkingLevel) Option {
	return func(o *Options) {
		o.ThinkingLevel = level
	}
}

// WithThinkingBudget sets a thinking token budget for models that use
// budget-based thinking (Gemini 2.5 series).
func WithThinkingBudget(tokens int) Option {
	return func(o *Options) {
		o.ThinkingBudget = &tokens
	}
}

// WithTools makes the given tools available to the model.
func WithTools(tools ...Tool) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithToolChoice controls how the model uses tools.
func WithToolChoice(choice ToolChoice) Option {
	return func(o *Options) {
		o.ToolChoice = choice
	}
}

// WithSystemInstruction overrides the client's system instruction for this
// request.
func WithSystemInstruction(instruction string) Option {
	return func(o *Options) {
		o.SystemInstruction = instruction
	}
}

// ApplyOptions applies functional options to a fresh Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
