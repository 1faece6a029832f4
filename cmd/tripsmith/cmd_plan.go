package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/app"
	"github.com/tripsmith/tripsmith/src/storage"
	"github.com/tripsmith/tripsmith/src/tripagent"
)

// PlanCmd plans a single trip and prints the itinerary.
type PlanCmd struct {
	From      string `short:"f" required:"" help:"Departure city"`
	To        string `short:"t" required:"" help:"Destination city"`
	StartDate string `help:"Travel start date (YYYY-MM-DD)"`
	Days      int    `default:"3" help:"Trip length in days"`
	Travelers int    `default:"2" help:"Number of travelers"`
	Budget    string `default:"Moderate" enum:"Cheap,Moderate,Luxury" help:"Budget level"`
	Vibe      string `default:"Relaxed" enum:"Relaxed,Adventure,Family,Nightlife,Cultural" help:"Trip vibe"`
	Query     string `short:"q" help:"Free-form notes for the planner"`
	Output    string `short:"o" help:"Also write the itinerary to this file"`
	NoSave    bool   `help:"Skip persisting the run to the database"`
}

func (p *PlanCmd) Run(kctx *kong.Context, cli *CLI) error {
	logger := createLogger(cli.LogLevel)

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	req := &tripagent.TripRequest{
		FromCity:    p.From,
		Destination: p.To,
		StartDate:   p.StartDate,
		Days:        p.Days,
		Travelers:   p.Travelers,
		Budget:      p.Budget,
		Vibe:        p.Vibe,
		Query:       p.Query,
	}
	startDate, _ := req.Dates(time.Now())

	var run *storage.PlanRun
	if !p.NoSave {
		run = &storage.PlanRun{
			FromCity:    req.FromCity,
			Destination: req.Destination,
			StartDate:   startDate,
			Days:        req.Days,
			Travelers:   req.Travelers,
			Budget:      req.Budget,
			Vibe:        req.Vibe,
		}
		if err := storage.CreatePlanRun(ctx, application.Store.DB(), run); err != nil {
			return fmt.Errorf("failed to create plan run: %w", err)
		}
	}

	recorder := agent.NewExecutionRecorder()
	result, planErr := application.Agent.PlanTrip(agent.WithRecorder(ctx, recorder), req)

	if run != nil {
		persistRun(ctx, application, run, result, recorder, planErr, logger)
	}

	if planErr != nil {
		return planErr
	}

	fmt.Println(result.Itinerary)

	if p.Output != "" {
		if err := os.WriteFile(p.Output, []byte(result.Itinerary+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", p.Output, err)
		}
		logger.Info("itinerary written", "path", p.Output)
	}
	if run != nil && application.Exporter != nil {
		if path, err := application.Exporter.Write(run.ID, req.Destination, startDate, result.Itinerary); err == nil {
			logger.Info("itinerary exported", "path", path)
		}
	}

	return nil
}

// persistRun records the outcome, conversation, and tool executions.
// Failures here are logged, not fatal; the itinerary was already produced.
func persistRun(ctx context.Context, application *app.App, run *storage.PlanRun, result *tripagent.PlanResult, recorder *agent.ExecutionRecorder, planErr error, logger interface {
	Warn(msg string, args ...interface{})
}) {
	db := application.Store.DB()

	for _, record := range recorder.Records() {
		execution := &storage.ToolExecution{
			PlanID:     run.ID,
			ToolName:   record.Tool,
			Input:      string(record.Input),
			Output:     record.Output,
			Error:      record.Error,
			DurationMs: record.Duration.Milliseconds(),
		}
		if err := storage.CreateToolExecution(ctx, db, execution); err != nil {
			logger.Warn("failed to persist tool execution", "tool", record.Tool, "error", err)
			break
		}
	}

	if planErr != nil {
		if err := storage.FailPlanRun(ctx, db, run.ID, planErr.Error()); err != nil {
			logger.Warn("failed to record plan failure", "error", err)
		}
		return
	}

	if err := storage.CompletePlanRun(ctx, db, run.ID, result.CorrelationID, result.Itinerary, result.ToolCallsMade); err != nil {
		logger.Warn("failed to record plan completion", "error", err)
		return
	}

	for i, msg := range result.Messages {
		record := &storage.PlanMessage{
			PlanID:  run.ID,
			Seq:     i,
			Role:    msg.Role,
			Content: msg.Content,
		}
		if len(msg.ToolCalls) > 0 {
			if data, err := json.Marshal(msg.ToolCalls); err == nil {
				s := string(data)
				record.ToolCalls = &s
			}
		}
		if err := storage.CreatePlanMessage(ctx, db, record); err != nil {
			logger.Warn("failed to persist message", "seq", i, "error", err)
			return
		}
	}
}
