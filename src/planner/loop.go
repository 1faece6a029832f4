package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/aisdk"
)

// DefaultMaxToolCalls is the ceiling on cumulative tool-call requests
// before the loop forces a final answer.
const DefaultMaxToolCalls = 10

// forcedFinalDirective is appended as a system message on the forced
// final turn, which runs with tools disabled.
const forcedFinalDirective = `You have gathered all necessary information from the available tools.
DO NOT call any more tools.
Generate the complete final markdown response NOW using all the data you have collected.`

// Config configures a planning loop.
type Config struct {
	Model        aisdk.ModelClient
	Toolbox      *agent.DefaultToolbox
	SystemPrompt string
	MaxToolCalls int
	// CorrelationID isolates this request at the model backend. A fresh
	// one is generated when empty.
	CorrelationID string
	Logger        *slog.Logger
}

// Loop drives a single planning conversation. It is strictly
// sequential: one model call, then tool dispatches one at a time in
// request order, then the next model call. Each Loop owns its
// ConversationState exclusively; run concurrent requests as separate
// Loop instances.
type Loop struct {
	model         aisdk.ModelClient
	toolbox       *agent.DefaultToolbox
	systemPrompt  string
	maxToolCalls  int
	correlationID string
	logger        *slog.Logger
}

// New creates a planning loop.
func New(cfg Config) (*Loop, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("model client is required")
	}
	if cfg.Toolbox == nil {
		return nil, fmt.Errorf("toolbox is required")
	}
	if cfg.MaxToolCalls <= 0 {
		cfg.MaxToolCalls = DefaultMaxToolCalls
	}
	if cfg.CorrelationID == "" {
		cfg.CorrelationID = uuid.New().String()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Loop{
		model:         cfg.Model,
		toolbox:       cfg.Toolbox,
		systemPrompt:  cfg.SystemPrompt,
		maxToolCalls:  cfg.MaxToolCalls,
		correlationID: cfg.CorrelationID,
		logger:        cfg.Logger.With("component", "planner_loop", "correlation_id", cfg.CorrelationID),
	}, nil
}

// CorrelationID returns the identifier threaded through to the model
// backend for this loop.
func (l *Loop) CorrelationID() string {
	return l.correlationID
}

// Run drives the conversation until a final assistant message is
// produced and returns it. Dispatch-level defects (unknown tool, bad
// arguments) and model backend failures escalate as errors; tool
// runtime failures are fed back into the conversation instead.
func (l *Loop) Run(ctx context.Context, state *ConversationState) (*aisdk.Message, error) {
	if state == nil || len(state.Messages) == 0 {
		return nil, fmt.Errorf("conversation state must contain at least one message")
	}

	state.EnsureSystemPrompt(l.systemPrompt)

	for {
		if state.ToolCallsMade >= l.maxToolCalls {
			return l.forceFinalAnswer(ctx, state)
		}

		l.logger.Debug("invoking model",
			"messages", len(state.Messages),
			"tool_calls_made", state.ToolCallsMade)

		response, err := l.invokeModel(ctx, state.Messages, agent.ToChatTools(l.toolbox.Tools()))
		if err != nil {
			return nil, err
		}
		state.Append(response)

		// A response that already reads as a finished itinerary ends the
		// run, even when the model attached further tool calls.
		if ContainsCompleteItinerary(response.Content) {
			l.logger.Info("complete itinerary detected", "tool_calls_made", state.ToolCallsMade)
			return response, nil
		}

		if len(response.ToolCalls) == 0 {
			l.logger.Info("final answer produced", "tool_calls_made", state.ToolCallsMade)
			return response, nil
		}

		state.ToolCallsMade += len(response.ToolCalls)
		l.logger.Debug("dispatching tool calls",
			"count", len(response.ToolCalls),
			"tool_calls_made", state.ToolCallsMade)

		results, err := l.dispatch(ctx, response.ToolCalls)
		if err != nil {
			return nil, err
		}
		for _, result := range results {
			state.Append(result)
		}
	}
}

// forceFinalAnswer runs the terminal turn once the ceiling is reached:
// the model is invoked without tools under an appended stop directive,
// and its response ends the conversation unconditionally.
func (l *Loop) forceFinalAnswer(ctx context.Context, state *ConversationState) (*aisdk.Message, error) {
	l.logger.Info("tool call ceiling reached, forcing final answer",
		"tool_calls_made", state.ToolCallsMade,
		"ceiling", l.maxToolCalls)

	messages := make([]*aisdk.Message, 0, len(state.Messages)+1)
	messages = append(messages, state.Messages...)
	messages = append(messages, &aisdk.Message{
		Role:    aisdk.RoleSystem,
		Content: forcedFinalDirective,
	})

	response, err := l.invokeModel(ctx, messages, nil)
	if err != nil {
		return nil, err
	}
	state.Append(response)
	return response, nil
}

func (l *Loop) invokeModel(ctx context.Context, messages []*aisdk.Message, tools []*aisdk.ChatTool) (*aisdk.Message, error) {
	req := &aisdk.ChatCompletionRequest{
		Messages: messages,
		Tools:    tools,
		User:     l.correlationID,
	}

	resp, err := l.model.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &ModelInvocationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ModelInvocationError{Err: errors.New("model returned no choices")}
	}

	msg := resp.Choices[0].Message
	if msg.Role == "" {
		msg.Role = aisdk.RoleAssistant
	}
	return &msg, nil
}

// dispatch executes the requested tool calls synchronously, one at a
// time, in request order. The returned result messages mirror that
// order exactly. Unknown tools and schema-invalid arguments escalate;
// a tool's own failure becomes an in-band "tool failed" result so the
// model can adapt.
func (l *Loop) dispatch(ctx context.Context, calls []aisdk.ToolCall) ([]*aisdk.Message, error) {
	results := make([]*aisdk.Message, 0, len(calls))

	for i := range calls {
		call := &calls[i]

		if !l.toolbox.HasTool(call.Function.Name) {
			return nil, &ToolDispatchError{
				Tool: call.Function.Name,
				Err:  ErrUnknownTool,
			}
		}

		// A non-nil error here is a dispatch-level defect, typically
		// arguments failing schema validation (agent.ErrInvalidArguments).
		response, err := l.toolbox.ExecuteTool(ctx, call)
		if err != nil {
			return nil, &ToolDispatchError{Tool: call.Function.Name, Err: err}
		}

		content := string(response.Content)
		if response.IsError {
			content = fmt.Sprintf("tool failed: %s", content)
			l.logger.Warn("tool reported failure", "tool", call.Function.Name)
		}

		results = append(results, &aisdk.Message{
			Role:       aisdk.RoleTool,
			Content:    content,
			Name:       call.Function.Name,
			ToolCallID: call.ID,
		})
	}

	return results, nil
}
