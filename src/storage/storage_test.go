package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenRunsMigrations(t *testing.T) {
	db := openTestDB(t)

	var count int
	err := db.DB().QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	db.Close()
}

func TestPlanRunLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	run := &PlanRun{
		CorrelationID: "corr-1",
		FromCity:      "Delhi",
		Destination:   "Goa",
		StartDate:     "2026-10-01",
		Days:          4,
		Travelers:     2,
		Budget:        "Moderate",
		Vibe:          "Relaxed",
	}
	require.NoError(t, CreatePlanRun(ctx, db.DB(), run))
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, StatusRunning, run.Status)

	got, err := GetPlanRunByID(ctx, db.DB(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Goa", got.Destination)
	assert.Equal(t, StatusRunning, got.Status)

	require.NoError(t, CompletePlanRun(ctx, db.DB(), run.ID, "corr-final", "# Itinerary", 7))

	got, err = GetPlanRunByID(ctx, db.DB(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "corr-final", got.CorrelationID)
	assert.Equal(t, "# Itinerary", got.Itinerary)
	assert.Equal(t, 7, got.ToolCallsMade)
}

func TestFailPlanRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	run := &PlanRun{CorrelationID: "corr-2", FromCity: "Delhi", Destination: "Goa", StartDate: "2026-10-01", Days: 2, Travelers: 1, Budget: "Cheap", Vibe: "Adventure"}
	require.NoError(t, CreatePlanRun(ctx, db.DB(), run))
	require.NoError(t, FailPlanRun(ctx, db.DB(), run.ID, "model backend unavailable"))

	got, err := GetPlanRunByID(ctx, db.DB(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "model backend unavailable", got.Error)
}

func TestGetPlanRunByIDNotFound(t *testing.T) {
	db := openTestDB(t)

	got, err := GetPlanRunByID(context.Background(), db.DB(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListPlanRuns(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, dest := range []string{"Goa", "Jaipur", "Manali"} {
		run := &PlanRun{CorrelationID: "c", FromCity: "Delhi", Destination: dest, StartDate: "2026-10-01", Days: 3, Travelers: 2, Budget: "Moderate", Vibe: "Cultural"}
		require.NoError(t, CreatePlanRun(ctx, db.DB(), run))
	}

	runs, err := ListPlanRuns(ctx, db.DB(), 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestPlanMessagesOrderedBySeq(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	run := &PlanRun{CorrelationID: "c", FromCity: "Delhi", Destination: "Goa", StartDate: "2026-10-01", Days: 3, Travelers: 2, Budget: "Moderate", Vibe: "Relaxed"}
	require.NoError(t, CreatePlanRun(ctx, db.DB(), run))

	// Insert out of order; Seq decides retrieval order.
	toolCalls := `[{"id":"call_1","function":{"name":"search_flights"}}]`
	require.NoError(t, CreatePlanMessage(ctx, db.DB(), &PlanMessage{PlanID: run.ID, Seq: 2, Role: "assistant", Content: "done"}))
	require.NoError(t, CreatePlanMessage(ctx, db.DB(), &PlanMessage{PlanID: run.ID, Seq: 0, Role: "system", Content: "prompt"}))
	require.NoError(t, CreatePlanMessage(ctx, db.DB(), &PlanMessage{PlanID: run.ID, Seq: 1, Role: "assistant", Content: "", ToolCalls: &toolCalls}))

	messages, err := GetMessagesByPlanID(ctx, db.DB(), run.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "system", messages[0].Role)
	require.NotNil(t, messages[1].ToolCalls)
	assert.Contains(t, *messages[1].ToolCalls, "search_flights")
	assert.Nil(t, messages[0].ToolCalls)
	assert.Equal(t, "done", messages[2].Content)
}

func TestToolExecutions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	run := &PlanRun{CorrelationID: "c", FromCity: "Delhi", Destination: "Goa", StartDate: "2026-10-01", Days: 3, Travelers: 2, Budget: "Moderate", Vibe: "Relaxed"}
	require.NoError(t, CreatePlanRun(ctx, db.DB(), run))

	require.NoError(t, CreateToolExecution(ctx, db.DB(), &ToolExecution{
		PlanID:     run.ID,
		ToolName:   "search_flights",
		Input:      `{"origin":"Delhi","destination":"Goa"}`,
		Output:     `{"flights":[]}`,
		DurationMs: 412,
	}))
	require.NoError(t, CreateToolExecution(ctx, db.DB(), &ToolExecution{
		PlanID:   run.ID,
		ToolName: "search_hotels",
		Input:    `{"location":"Goa"}`,
		Error:    "serpapi: rate limited",
	}))

	executions, err := GetToolExecutionsByPlanID(ctx, db.DB(), run.ID)
	require.NoError(t, err)
	require.Len(t, executions, 2)
	assert.Equal(t, "search_flights", executions[0].ToolName)
	assert.Equal(t, int64(412), executions[0].DurationMs)
	assert.Equal(t, "serpapi: rate limited", executions[1].Error)
}
