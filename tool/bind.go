package tool

import (
	"context"
	"encoding/json"

	ai "github.com/gemcore/gemcore"
)

// Handler executes a tool call and returns the result content.
type Handler func(ctx context.Context, call ai.ToolCall) (string, error)

// TypedHandler is a tool implementation taking decoded arguments.
type TypedHandler[T any] func(ctx context.Context, args T) (string, error)

// Bind creates a tool descriptor and handler from a typed function. The
// parameter schema is reflected from struct tags on T.
//
// Example:
//
//	type TranslateArgs struct {
//	    Text string `json:"text" desc:"Text to translate" required:"true"`
//	    To   string `json:"to" desc:"Target language" required:"true"`
//	}
//
//	t, h, err := tool.Bind("translate", "Translate text between languages",
//	    func(ctx context.Context, args TranslateArgs) (string, error) {
//	        return translate(args.Text, args.To)
//	    })
func Bind[T any](name, description string, fn TypedHandler[T]) (ai.Tool, Handler, error) {
	schema, err := ai.SchemaFor[T]()
	if err != nil {
		return ai.Tool{}, nil, err
	}

	t := ai.Tool{
		Name:        name,
		Description: description,
		Parameters:  schema,
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args T
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}
		return fn(ctx, args)
	}

	return t, handler, nil
}

// MustBind is like Bind but panics on error. Useful in initialization code
// where a bad schema should be fatal.
func MustBind[T any](name, description string, fn TypedHandler[T]) (ai.Tool, Handler) {
	t, h, err := Bind(name, description, fn)
	if err != nil {
		panic(err)
	}
	return t, h
}

// BindTo binds a typed function and registers it directly on a Registry.
func BindTo[T any](r *Registry, name, description string, fn TypedHandler[T]) error {
	t, h, err := Bind(name, description, fn)
	if err != nil {
		return err
	}
	return r.Register(t, h)
}

// MustBindTo is like BindTo but panics on error.
func MustBindTo[T any](r *Registry, name, description string, fn TypedHandler[T]) {
	if err := BindTo(r, name, description, fn); err != nil {
		panic(err)
	}
}
