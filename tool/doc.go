// Package tool declares callable tools for Gemini function calling.
//
// Bind wraps a plain Go function into a tool descriptor with a parameter
// schema reflected from its argument struct. Registry collects bound tools
// and implements gemcore.ToolExecutor, so it can be passed straight to
// Client.GenerateWithTools.
package tool
