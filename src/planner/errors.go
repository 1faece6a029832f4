package planner

import (
	"errors"
	"fmt"
)

// ErrUnknownTool marks a model request naming a tool that was never
// registered. This is a configuration defect, not a data problem.
var ErrUnknownTool = errors.New("unknown tool requested")

// ToolDispatchError is an escalated dispatch failure: an unknown tool
// name or arguments that do not match the tool's declared schema.
// Tool-internal failures never produce this error; those are fed back
// to the model as tool-result messages instead.
type ToolDispatchError struct {
	Tool string
	Err  error
}

func (e *ToolDispatchError) Error() string {
	return fmt.Sprintf("tool dispatch failed for %s: %v", e.Tool, e.Err)
}

func (e *ToolDispatchError) Unwrap() error {
	return e.Err
}

// ModelInvocationError wraps a model backend failure: unreachable
// endpoint, API error, or an empty completion. Not retried at this
// layer; retry belongs to the model client.
type ModelInvocationError struct {
	Err error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model invocation failed: %v", e.Err)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}
