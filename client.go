package gemcore

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"google.golang.org/genai"
)

// Client is a facade over the Google GenAI SDK. It resolves configuration
// once at construction and shapes arguments for each operation before
// forwarding to the SDK. Responses are the SDK's own types, returned
// unchanged.
//
// A Client is safe for concurrent use.
type Client struct {
	api      *genai.Client
	settings Settings
	system   string
	defaults []Option
	logger   *slog.Logger
}

// ClientOption configures a Client at construction time. Explicit options
// take precedence over environment-derived settings.
type ClientOption func(*Client)

// WithAPIKey sets the API key, overriding GOOGLE_API_KEY.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.settings.APIKey = key
	}
}

// WithDefaultModel sets the default model, overriding GEMINI_MODEL.
func WithDefaultModel(model string) ClientOption {
	return func(c *Client) {
		c.settings.Model = model
	}
}

// WithVertex selects the Vertex AI backend with the given project and
// location, authenticating via application default credentials.
func WithVertex(project, location string) ClientOption {
	return func(c *Client) {
		c.settings.APIKey = ""
		c.settings.Project = project
		c.settings.Location = location
	}
}

// WithSettings replaces the environment-derived settings entirely.
func WithSettings(s Settings) ClientOption {
	return func(c *Client) {
		c.settings = s
	}
}

// WithSystem sets a system instruction applied to every request unless
// overridden per call with WithSystemInstruction.
func WithSystem(instruction string) ClientOption {
	return func(c *Client) {
		c.system = instruction
	}
}

// WithGenerateDefaults sets generation options applied to every request.
// Per-call options override them option by option.
func WithGenerateDefaults(opts ...Option) ClientOption {
	return func(c *Client) {
		c.defaults = opts
	}
}

// WithLogger sets the logger for debug output. The default discards logs.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client. Settings are loaded from the environment (see
// LoadSettings) and then adjusted by the given options. New fails when no
// API key is available and the Vertex backend is not configured.
func New(ctx context.Context, opts ...ClientOption) (*Client, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	c := &Client{
		settings: settings,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.settings.Validate(); err != nil {
		return nil, err
	}

	cc := &genai.ClientConfig{}
	if c.settings.UsesVertex() {
		cc.Backend = genai.BackendVertexAI
		cc.Project = c.settings.Project
		cc.Location = c.settings.Location
	} else {
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = c.settings.APIKey
	}

	api, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.api = api

	return c, nil
}

// Settings returns the resolved settings the client was built with.
func (c *Client) Settings() Settings {
	return c.settings
}

// resolve merges client defaults and per-call options.
func (c *Client) resolve(opts []Option) *Options {
	merged := make([]Option, 0, len(c.defaults)+len(opts))
	merged = append(merged, c.defaults...)
	merged = append(merged, opts...)
	o := ApplyOptions(merged...)
	if o.SystemInstruction == "" {
		o.SystemInstruction = c.system
	}
	return o
}

func (c *Client) model(o *Options) string {
	if o.Model != "" {
		return o.Model
	}
	return c.settings.Model
}

// userContents wraps prompt parts into a single user turn.
func userContents(parts []*genai.Part) []*genai.Content {
	return []*genai.Content{{Role: "user", Parts: parts}}
}

// GenerateContent sends a prompt and returns the complete SDK response.
func (c *Client) GenerateContent(ctx context.Context, parts []*genai.Part, opts ...Option) (*genai.GenerateContentResponse, error) {
	return c.generate(ctx, userContents(parts), opts...)
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, opts ...Option) (*genai.GenerateContentResponse, error) {
	o := c.resolve(opts)
	model := c.model(o)

	c.logger.DebugContext(ctx, "generating content", "model", model)

	resp, err := c.api.Models.GenerateContent(ctx, model, contents, buildConfig(o))
	if err != nil {
		return nil, wrapError("generate content", err)
	}
	return resp, nil
}

// GenerateContentStream sends a prompt and returns the SDK's streaming
// iterator of response chunks.
func (c *Client) GenerateContentStream(ctx context.Context, parts []*genai.Part, opts ...Option) iter.Seq2[*genai.GenerateContentResponse, error] {
	o := c.resolve(opts)
	model := c.model(o)
	config := buildConfig(o)

	c.logger.DebugContext(ctx, "generating content stream", "model", model)

	inner := c.api.Models.GenerateContentStream(ctx, model, userContents(parts), config)
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for resp, err := range inner {
			if err != nil {
				yield(nil, wrapError("generate content stream", err))
				return
			}
			if !yield(resp, nil) {
				return
			}
		}
	}
}

// Stream sends a prompt and returns a channel of stream events: one event
// per text delta and a final Done event carrying the accumulated text and
// any tool calls. The channel is closed when the stream ends.
func (c *Client) Stream(ctx context.Context, parts []*genai.Part, opts ...Option) (<-chan StreamEvent, error) {
	chunks := c.GenerateContentStream(ctx, parts, opts...)
	ch := make(chan StreamEvent)

	go func() {
		defer close(ch)

		var fullText string
		var allParts []*genai.Part

		for resp, err := range chunks {
			if err != nil {
				ch <- StreamEvent{Err: err}
				return
			}

			if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
				ch <- StreamEvent{Err: &BlockedError{Reason: string(resp.PromptFeedback.BlockReason)}}
				return
			}

			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				continue
			}
			for _, part := range resp.Candidates[0].Content.Parts {
				allParts = append(allParts, part)
				if part.Text == "" {
					continue
				}
				ch <- StreamEvent{Delta: part.Text, Thought: part.Thought}
				if !part.Thought {
					fullText += part.Text
				}
			}
		}

		ch <- StreamEvent{
			Done:      true,
			Text:      fullText,
			ToolCalls: extractToolCalls(allParts),
		}
	}()

	return ch, nil
}

// CountTokens counts the tokens the prompt would consume for the client's
// model (or the model given with WithModel).
func (c *Client) CountTokens(ctx context.Context, parts []*genai.Part, opts ...Option) (*genai.CountTokensResponse, error) {
	o := c.resolve(opts)
	model := c.model(o)

	c.logger.DebugContext(ctx, "counting tokens", "model", model)

	resp, err := c.api.Models.CountTokens(ctx, model, userContents(parts), nil)
	if err != nil {
		return nil, wrapError("count tokens", err)
	}
	return resp, nil
}

// UploadFile uploads a file to the File API and returns the SDK file
// object, whose URI can be referenced in prompts. An empty mimeType lets
// the SDK infer it from the file extension.
func (c *Client) UploadFile(ctx context.Context, path string, mimeType string) (*genai.File, error) {
	c.logger.DebugContext(ctx, "uploading file", "path", path)

	var config *genai.UploadFileConfig
	if mimeType != "" {
		config = &genai.UploadFileConfig{MIMEType: mimeType}
	}

	file, err := c.api.Files.UploadFromPath(ctx, path, config)
	if err != nil {
		return nil, wrapError("upload file", err)
	}
	return file, nil
}

// UploadReader uploads content from a reader to the File API. Unlike
// UploadFile there is no filename to infer from, so mimeType is required.
func (c *Client) UploadReader(ctx context.Context, r io.Reader, mimeType string) (*genai.File, error) {
	if mimeType == "" {
		return nil, fmt.Errorf("mime type must be provided when uploading from a reader")
	}

	c.logger.DebugContext(ctx, "uploading from reader", "mimeType", mimeType)

	file, err := c.api.Files.Upload(ctx, r, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return nil, wrapError("upload reader", err)
	}
	return file, nil
}
