package tool

import (
	"context"
	"fmt"
	"sort"
	"sync"

	ai "github.com/gemcore/gemcore"
)

// Registry manages registered tools and their handlers. It implements
// gemcore.ToolExecutor and is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]registeredTool
}

type registeredTool struct {
	tool    ai.Tool
	handler Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]registeredTool),
	}
}

// Register adds a tool with its handler. Registering a name twice is an
// error.
func (r *Registry) Register(t ai.Tool, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name]; exists {
		return &AlreadyRegisteredError{Name: t.Name}
	}

	r.tools[t.Name] = registeredTool{tool: t, handler: handler}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(t ai.Tool, handler Handler) {
	if err := r.Register(t, handler); err != nil {
		panic(err)
	}
}

// Tools returns the registered tool declarations, sorted by name.
func (r *Registry) Tools() []ai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ai.Tool, 0, len(r.tools))
	for _, rt := range r.tools {
		tools = append(tools, rt.tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Execute runs a single tool call. Unknown tools and handler failures are
// reported in the result with IsError set, so the model can recover.
func (r *Registry) Execute(ctx context.Context, call ai.ToolCall) ai.ToolResult {
	r.mu.RLock()
	rt, ok := r.tools[call.Name]
	r.mu.RUnlock()

	result := ai.ToolResult{
		ToolCallID: call.ID,
		Name:       call.Name,
	}

	if !ok {
		result.Content = fmt.Sprintf("unknown tool: %s", call.Name)
		result.IsError = true
		return result
	}

	content, err := rt.handler(ctx, call)
	if err != nil {
		result.Content = err.Error()
		result.IsError = true
		return result
	}

	result.Content = content
	return result
}

var _ ai.ToolExecutor = (*Registry)(nil)
