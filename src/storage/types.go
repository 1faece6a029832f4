package storage

import "time"

// Plan run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// PlanRun is one planning request and its outcome.
type PlanRun struct {
	ID            string    `json:"id" db:"id"`
	CorrelationID string    `json:"correlation_id" db:"correlation_id"`
	FromCity      string    `json:"from_city" db:"from_city"`
	Destination   string    `json:"destination" db:"destination"`
	StartDate     string    `json:"start_date" db:"start_date"`
	Days          int       `json:"days" db:"days"`
	Travelers     int       `json:"travelers" db:"travelers"`
	Budget        string    `json:"budget" db:"budget"`
	Vibe          string    `json:"vibe" db:"vibe"`
	Status        string    `json:"status" db:"status"`
	Itinerary     string    `json:"itinerary" db:"itinerary"`
	ToolCallsMade int       `json:"tool_calls_made" db:"tool_calls_made"`
	Error         string    `json:"error" db:"error"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// PlanMessage is one conversation message captured during a run. Seq
// preserves the order messages were produced in.
type PlanMessage struct {
	ID        string    `json:"id" db:"id"`
	PlanID    string    `json:"plan_id" db:"plan_id"`
	Seq       int       `json:"seq" db:"seq"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	ToolCalls *string   `json:"tool_calls,omitempty" db:"tool_calls"` // JSON array of tool calls
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ToolExecution struct {
	ID         string    `json:"id" db:"id"`
	PlanID     string    `json:"plan_id" db:"plan_id"`
	ToolName   string    `json:"tool_name" db:"tool_name"`
	Input      string    `json:"input" db:"input"`
	Output     string    `json:"output" db:"output"`
	Error      string    `json:"error" db:"error"`
	DurationMs int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
