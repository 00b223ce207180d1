package gemcore

// StreamEvent represents a single event in a streaming response.
//
// During the stream, events carry incremental Delta text (Thought marks
// deltas that belong to a thought summary). The final event has Done set
// along with the accumulated text and any tool calls the model requested.
type StreamEvent struct {
	// Delta contains the incremental text for this event.
	Delta string
	// Thought is true when Delta is part of a thought summary rather than
	// the answer.
	Thought bool
	// Done indicates this is the final event in the stream.
	Done bool
	// Text contains the full accumulated answer text when Done is true.
	Text string
	// ToolCalls contains tool requests collected over the whole stream,
	// populated when Done is true.
	ToolCalls []ToolCall
	// Err contains any error that occurred during streaming. The channel
	// is closed after an error event.
	Err error
}
