package tool

import "fmt"

// AlreadyRegisteredError is returned when registering a tool name twice.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("tool already registered: %s", e.Name)
}
