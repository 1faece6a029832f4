// Package tripagent assembles the travel planning agent: the system
// prompt, the full toolbox, and the per-request planning loop.
package tripagent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/aisdk"
	"github.com/tripsmith/tripsmith/src/planner"
	"github.com/tripsmith/tripsmith/src/serpapi"
	"github.com/tripsmith/tripsmith/src/tripagent/tools"
	tool_flightsearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_flightsearch"
	tool_hotelsearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_hotelsearch"
	tool_placesearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_placesearch"
	tool_weather "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_weather"
)

// Config holds everything the agent needs to plan trips.
type Config struct {
	Model         aisdk.ModelClient
	Search        *serpapi.Client
	WeatherAPIKey string
	Currency      string
	MaxToolCalls  int
	Logger        *slog.Logger
	Now           func() time.Time
}

// Agent is the assembled trip planner. One Agent serves many requests;
// each PlanTrip call runs an independent loop with fresh state.
type Agent struct {
	cfg     Config
	toolbox *agent.DefaultToolbox
	logger  *slog.Logger
}

// New builds the agent and registers the full toolbox.
func New(cfg Config) (*Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("model client is required")
	}
	if cfg.Search == nil {
		return nil, fmt.Errorf("serpapi client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	toolbox := agent.NewToolbox[agent.Tool]()
	toolbox.RegisterMiddleware(agent.LoggingMiddleware(cfg.Logger))
	toolbox.RegisterMiddleware(agent.RecordingMiddleware())

	flightTool, err := tools.FlightSearchTool(tool_flightsearch.Config{
		Search:   cfg.Search,
		Model:    cfg.Model,
		Currency: cfg.Currency,
		Logger:   cfg.Logger,
		Now:      cfg.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build flight tool: %w", err)
	}

	hotelTool, err := tools.HotelSearchTool(tool_hotelsearch.Config{
		Search:   cfg.Search,
		Currency: cfg.Currency,
		Logger:   cfg.Logger,
		Now:      cfg.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel tool: %w", err)
	}

	weatherTool, err := tools.WeatherTool(tool_weather.Config{
		APIKey: cfg.WeatherAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weather tool: %w", err)
	}

	placeTools, err := tools.PlaceSearchTools(tool_placesearch.Config{
		Search: cfg.Search,
		Guide:  tool_placesearch.NewGuideFetcher(),
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build place tools: %w", err)
	}

	expenseTools, err := tools.ExpenseTools()
	if err != nil {
		return nil, fmt.Errorf("failed to build expense tools: %w", err)
	}

	all := []agent.Tool{flightTool, hotelTool, weatherTool}
	all = append(all, placeTools...)
	all = append(all, expenseTools...)
	for _, tool := range all {
		if err := toolbox.RegisterTool(tool); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", tool.GetName(), err)
		}
	}

	cfg.Logger.Info("trip agent initialized", "tools", len(all))

	return &Agent{
		cfg:     cfg,
		toolbox: toolbox,
		logger:  cfg.Logger,
	}, nil
}

// Toolbox exposes the registered tools.
func (a *Agent) Toolbox() *agent.DefaultToolbox {
	return a.toolbox
}

// PlanResult is the outcome of one planning run.
type PlanResult struct {
	CorrelationID string
	Itinerary     string
	ToolCallsMade int
	Messages      []*aisdk.Message
}

// PlanTrip runs a full planning loop for the request and returns the
// final itinerary.
func (a *Agent) PlanTrip(ctx context.Context, req *TripRequest) (*PlanResult, error) {
	loop, err := planner.New(planner.Config{
		Model:        a.cfg.Model,
		Toolbox:      a.toolbox,
		SystemPrompt: SystemPrompt,
		MaxToolCalls: a.cfg.MaxToolCalls,
		Logger:       a.logger,
	})
	if err != nil {
		return nil, err
	}

	state := planner.NewConversationState(
		&aisdk.Message{Role: aisdk.RoleSystem, Content: SystemPrompt},
		&aisdk.Message{Role: aisdk.RoleUser, Content: req.UserPrompt(a.cfg.Now())},
	)

	a.logger.Info("planning trip",
		"origin", req.FromCity,
		"destination", req.Destination,
		"days", req.Days,
		"correlation_id", loop.CorrelationID())

	final, err := loop.Run(ctx, state)
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		CorrelationID: loop.CorrelationID(),
		Itinerary:     final.Content,
		ToolCallsMade: state.ToolCallsMade,
		Messages:      state.Messages,
	}, nil
}
