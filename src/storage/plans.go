package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
)

// CreatePlanRun inserts a new plan run in the running state.
func CreatePlanRun(ctx context.Context, db Execer, run *PlanRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Status == "" {
		run.Status = StatusRunning
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.UpdatedAt.IsZero() {
		run.UpdatedAt = run.CreatedAt
	}

	query := `INSERT INTO plans (id, correlation_id, from_city, destination, start_date, days, travelers, budget, vibe, status, itinerary, tool_calls_made, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query,
		run.ID,
		run.CorrelationID,
		run.FromCity,
		run.Destination,
		run.StartDate,
		run.Days,
		run.Travelers,
		run.Budget,
		run.Vibe,
		run.Status,
		run.Itinerary,
		run.ToolCallsMade,
		run.Error,
		run.CreatedAt,
		run.UpdatedAt,
	)
	return err
}

// GetPlanRunByID retrieves a plan run by its ID. Returns nil when no
// run with that ID exists.
func GetPlanRunByID(ctx context.Context, db sqlscan.Querier, planID string) (*PlanRun, error) {
	query := `SELECT id, correlation_id, from_city, destination, start_date, days, travelers, budget, vibe, status, itinerary, tool_calls_made, error, created_at, updated_at FROM plans WHERE id = ?`
	var run PlanRun
	err := sqlscan.Get(ctx, db, &run, query, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListPlanRuns retrieves plan runs newest first, up to limit.
func ListPlanRuns(ctx context.Context, db sqlscan.Querier, limit int) ([]PlanRun, error) {
	query := `SELECT id, correlation_id, from_city, destination, start_date, days, travelers, budget, vibe, status, itinerary, tool_calls_made, error, created_at, updated_at FROM plans ORDER BY created_at DESC LIMIT ?`
	var runs []PlanRun
	if err := sqlscan.Select(ctx, db, &runs, query, limit); err != nil {
		return nil, err
	}
	return runs, nil
}

// CompletePlanRun records a successful run. The correlation ID is only
// known once the loop has run, so it is written here.
func CompletePlanRun(ctx context.Context, db Execer, planID, correlationID, itinerary string, toolCallsMade int) error {
	query := `UPDATE plans SET status = ?, correlation_id = ?, itinerary = ?, tool_calls_made = ?, updated_at = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, query, StatusCompleted, correlationID, itinerary, toolCallsMade, time.Now(), planID)
	return err
}

// FailPlanRun records a failed run with its error message.
func FailPlanRun(ctx context.Context, db Execer, planID, errMsg string) error {
	query := `UPDATE plans SET status = ?, error = ?, updated_at = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, query, StatusFailed, errMsg, time.Now(), planID)
	return err
}

// CreatePlanMessage inserts one conversation message for a run.
func CreatePlanMessage(ctx context.Context, db Execer, message *PlanMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	query := `INSERT INTO plan_messages (id, plan_id, seq, role, content, tool_calls, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query, message.ID, message.PlanID, message.Seq, message.Role, message.Content, message.ToolCalls, message.CreatedAt)
	return err
}

// GetMessagesByPlanID retrieves all messages for a run in production order.
func GetMessagesByPlanID(ctx context.Context, db sqlscan.Querier, planID string) ([]PlanMessage, error) {
	query := `SELECT id, plan_id, seq, role, content, tool_calls, created_at FROM plan_messages WHERE plan_id = ? ORDER BY seq`
	var messages []PlanMessage
	if err := sqlscan.Select(ctx, db, &messages, query, planID); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateToolExecution records one tool invocation during a run.
func CreateToolExecution(ctx context.Context, db Execer, execution *ToolExecution) error {
	if execution.ID == "" {
		execution.ID = uuid.New().String()
	}
	if execution.CreatedAt.IsZero() {
		execution.CreatedAt = time.Now()
	}

	query := `INSERT INTO tool_executions (id, plan_id, tool_name, input, output, error, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query,
		execution.ID,
		execution.PlanID,
		execution.ToolName,
		execution.Input,
		execution.Output,
		execution.Error,
		execution.DurationMs,
		execution.CreatedAt,
	)
	return err
}

// GetToolExecutionsByPlanID retrieves tool executions for a run ordered
// by creation time.
func GetToolExecutionsByPlanID(ctx context.Context, db sqlscan.Querier, planID string) ([]ToolExecution, error) {
	query := `SELECT id, plan_id, tool_name, input, output, error, duration_ms, created_at FROM tool_executions WHERE plan_id = ? ORDER BY created_at`
	var executions []ToolExecution
	if err := sqlscan.Select(ctx, db, &executions, query, planID); err != nil {
		return nil, err
	}
	return executions, nil
}
