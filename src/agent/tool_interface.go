package agent

import (
	"context"
	"errors"

	"github.com/tripsmith/tripsmith/src/aisdk"
	jsonschema "github.com/swaggest/jsonschema-go"
)

// ErrInvalidArguments marks a tool-call payload that does not conform to
// the tool's declared schema. Callers treat it as a configuration/defect
// failure, not a transient tool failure.
var ErrInvalidArguments = errors.New("invalid tool arguments")

// Tool is the interface that all tools must implement
type Tool interface {
	// GetType returns the tool type (always "function" for now)
	GetType() string

	// GetName returns the tool's name
	GetName() string

	// GetDescription returns the tool's description
	GetDescription() string

	// GetParameters returns the JSON schema for the tool's parameters
	GetParameters() *jsonschema.Schema

	// Execute runs the tool with the given parameters. Argument payloads
	// that fail schema validation return an error wrapping
	// ErrInvalidArguments; failures inside the tool itself come back as a
	// ToolResponse with IsError set.
	Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error)
}
