// Package planner implements the bounded tool-calling loop that drives
// a trip-planning conversation to a final itinerary.
package planner

import (
	"github.com/tripsmith/tripsmith/src/aisdk"
)

// ConversationState owns the ordered message history of a single
// planning request plus the running count of tool-call requests issued
// by the model. One state per request; never shared between requests.
type ConversationState struct {
	Messages      []*aisdk.Message
	ToolCallsMade int
}

// NewConversationState creates a state seeded with the given messages.
func NewConversationState(messages ...*aisdk.Message) *ConversationState {
	return &ConversationState{
		Messages: append([]*aisdk.Message{}, messages...),
	}
}

// Append adds a message to the history. Messages are append-only and
// immutable once added.
func (s *ConversationState) Append(msg *aisdk.Message) {
	s.Messages = append(s.Messages, msg)
}

// LastMessage returns the most recent message, or nil when empty.
func (s *ConversationState) LastMessage() *aisdk.Message {
	if len(s.Messages) == 0 {
		return nil
	}
	return s.Messages[len(s.Messages)-1]
}

// EnsureSystemPrompt prepends the standing system instruction when the
// history does not already start with one.
func (s *ConversationState) EnsureSystemPrompt(prompt string) {
	if len(s.Messages) > 0 && s.Messages[0].Role == aisdk.RoleSystem {
		return
	}
	s.Messages = append([]*aisdk.Message{{
		Role:    aisdk.RoleSystem,
		Content: prompt,
	}}, s.Messages...)
}
