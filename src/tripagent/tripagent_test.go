package tripagent

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsmith/tripsmith/src/aisdk"
	"github.com/tripsmith/tripsmith/src/serpapi"
)

type fixedModel struct {
	content string
	user    string
}

func (m *fixedModel) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	m.user = req.User
	return &aisdk.ChatCompletionResponse{
		Choices: []aisdk.Choice{{Message: aisdk.Message{Role: aisdk.RoleAssistant, Content: m.content}}},
	}, nil
}

func (m *fixedModel) GetModelInfo() *aisdk.ModelInfo {
	return &aisdk.ModelInfo{ID: "test-model"}
}

func newTestAgent(t *testing.T, model aisdk.ModelClient) *Agent {
	t.Helper()
	search, err := serpapi.NewClient(serpapi.Config{APIKey: "test-key"})
	require.NoError(t, err)

	agent, err := New(Config{
		Model:  model,
		Search: search,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return agent
}

func TestNewRegistersFullToolbox(t *testing.T) {
	agent := newTestAgent(t, &fixedModel{content: "hi"})

	tools := agent.Toolbox().Tools()
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.GetName())
	}

	assert.ElementsMatch(t, []string{
		"search_flights",
		"search_hotels",
		"get_weather_forecast",
		"search_attractions",
		"search_restaurants",
		"search_activities",
		"estimate_total_hotel_cost",
		"calculate_total_expense",
		"calculate_daily_expense_budget",
	}, names)
}

func TestNewRequiresModelAndSearch(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	search, err := serpapi.NewClient(serpapi.Config{APIKey: "k"})
	require.NoError(t, err)
	_, err = New(Config{Search: search})
	require.Error(t, err)
}

func TestPlanTrip(t *testing.T) {
	model := &fixedModel{content: "# ✈️ 3-Day Trip: Delhi to Goa\n\n## 📅 DETAILED DAY-BY-DAY ITINERARY\nDay 1."}
	agent := newTestAgent(t, model)

	result, err := agent.PlanTrip(context.Background(), &TripRequest{
		FromCity:    "Delhi",
		Destination: "Goa",
		StartDate:   "2999-10-01",
		Days:        3,
		Travelers:   2,
		Budget:      "Moderate",
		Vibe:        "Relaxed",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.CorrelationID)
	assert.Equal(t, model.user, result.CorrelationID)
	assert.Contains(t, result.Itinerary, "DETAILED DAY-BY-DAY ITINERARY")
	assert.Equal(t, 0, result.ToolCallsMade)

	// System prompt, user prompt, final answer.
	require.Len(t, result.Messages, 3)
	assert.Equal(t, aisdk.RoleSystem, result.Messages[0].Role)
	assert.Contains(t, result.Messages[1].Content, "TRIP PLANNING REQUEST")
}
