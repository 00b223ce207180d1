// Package models lists the Gemini models this library knows about, with
// pricing information for cost estimation.
//
// Use the constants with gemcore.WithModel():
//
//	resp, err := c.GenerateContent(ctx, prompt, gemcore.WithModel(models.Gemini25Flash.String()))
//
// Pricing is per million tokens in USD and covers the standard context
// window. Gemini Pro models charge a higher rate beyond 200K input tokens;
// use CostLongContext for requests in that tier.
package models

// Pricing contains per-million-token pricing (USD) for a model. The long
// context fields are zero for models without tiered pricing.
type Pricing struct {
	// InputPerMillion is the standard input token pricing.
	InputPerMillion float64
	// OutputPerMillion is the standard output token pricing.
	OutputPerMillion float64
	// InputPerMillionLong applies to requests beyond 200K input tokens.
	InputPerMillionLong float64
	// OutputPerMillionLong applies to requests beyond 200K input tokens.
	OutputPerMillionLong float64
}

// HasLongContextPricing returns true if the model has tiered pricing for
// long context requests.
func (p Pricing) HasLongContextPricing() bool {
	return p.InputPerMillionLong > 0 || p.OutputPerMillionLong > 0
}

// Model identifies a Gemini model.
type Model struct {
	id      string
	pricing Pricing
}

// String returns the API identifier for this model.
func (m Model) String() string { return m.id }

// Pricing returns the pricing for this model.
func (m Model) Pricing() Pricing { return m.pricing }

// Cost estimates the cost in USD for a request at standard context rates.
func (m Model) Cost(inputTokens, outputTokens int) float64 {
	return CalculateCost(inputTokens, outputTokens, m.pricing)
}

// CostLongContext estimates the cost in USD at the long context tier. It
// falls back to standard rates for models without tiered pricing.
func (m Model) CostLongContext(inputTokens, outputTokens int) float64 {
	p := m.pricing
	if !p.HasLongContextPricing() {
		return m.Cost(inputTokens, outputTokens)
	}
	return float64(inputTokens)/1_000_000*p.InputPerMillionLong +
		float64(outputTokens)/1_000_000*p.OutputPerMillionLong
}

// CalculateCost computes the cost in USD for token counts at the given
// pricing.
func CalculateCost(inputTokens, outputTokens int, p Pricing) float64 {
	return float64(inputTokens)/1_000_000*p.InputPerMillion +
		float64(outputTokens)/1_000_000*p.OutputPerMillion
}

// Model pricing last verified: August 2026.
var (
	// Gemini 3 Series
	Gemini3ProPreview = Model{id: "gemini-3-pro-preview", pricing: Pricing{InputPerMillion: 2.00, OutputPerMillion: 12.00, InputPerMillionLong: 4.00, OutputPerMillionLong: 18.00}}

	// Gemini 2.5 Series
	Gemini25Pro       = Model{id: "gemini-2.5-pro", pricing: Pricing{InputPerMillion: 1.25, OutputPerMillion: 10.00, InputPerMillionLong: 2.50, OutputPerMillionLong: 15.00}}
	Gemini25Flash     = Model{id: "gemini-2.5-flash", pricing: Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}}
	Gemini25FlashLite = Model{id: "gemini-2.5-flash-lite", pricing: Pricing{InputPerMillion: 0.075, OutputPerMillion: 0.30}}

	// Default is the recommended default model.
	Default = Gemini3ProPreview
)

var catalog = map[string]Model{
	Gemini3ProPreview.id: Gemini3ProPreview,
	Gemini25Pro.id:       Gemini25Pro,
	Gemini25Flash.id:     Gemini25Flash,
	Gemini25FlashLite.id: Gemini25FlashLite,
}

// Lookup returns the catalog entry for a model identifier.
func Lookup(id string) (Model, bool) {
	m, ok := catalog[id]
	return m, ok
}
