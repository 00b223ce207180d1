package gemcore

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

// Chat is a thin wrapper over an SDK chat session. The SDK owns the
// conversation history; Chat only shapes arguments on the way in.
type Chat struct {
	session *genai.Chat
}

// StartChat creates a chat session with optional initial history. The
// resolved generation options apply to every turn of the session.
func (c *Client) StartChat(ctx context.Context, history []*genai.Content, opts ...Option) (*Chat, error) {
	o := c.resolve(opts)
	model := c.model(o)

	c.logger.DebugContext(ctx, "starting chat", "model", model)

	session, err := c.api.Chats.Create(ctx, model, buildConfig(o), history)
	if err != nil {
		return nil, wrapError("start chat", err)
	}
	return &Chat{session: session}, nil
}

// Send sends a message in the session and returns the complete response.
func (ch *Chat) Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	resp, err := ch.session.SendMessage(ctx, derefParts(parts)...)
	if err != nil {
		return nil, wrapError("chat send", err)
	}
	return resp, nil
}

// SendStream sends a message in the session and streams response chunks.
func (ch *Chat) SendStream(ctx context.Context, parts ...*genai.Part) iter.Seq2[*genai.GenerateContentResponse, error] {
	inner := ch.session.SendMessageStream(ctx, derefParts(parts)...)
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for resp, err := range inner {
			if err != nil {
				yield(nil, wrapError("chat send stream", err))
				return
			}
			if !yield(resp, nil) {
				return
			}
		}
	}
}

// History returns the session history from the SDK. With curated set, only
// turns the model considers valid are included.
func (ch *Chat) History(curated bool) []*genai.Content {
	return ch.session.History(curated)
}

// derefParts adapts our pointer-based part helpers to the SDK chat API,
// which takes parts by value.
func derefParts(parts []*genai.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
