package tool_flightsearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripsmith/tripsmith/src/aisdk"
	"github.com/tripsmith/tripsmith/src/serpapi"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// iataModel answers every completion with a fixed IATA code.
type iataModel struct {
	code string
}

func (m *iataModel) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	return &aisdk.ChatCompletionResponse{
		Choices: []aisdk.Choice{{Message: aisdk.Message{Role: aisdk.RoleAssistant, Content: m.code}}},
	}, nil
}

func (m *iataModel) GetModelInfo() *aisdk.ModelInfo {
	return &aisdk.ModelInfo{ID: "stub/iata"}
}

func newSearchClient(t *testing.T, handler http.HandlerFunc) *serpapi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := serpapi.NewClient(serpapi.Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

const flightsBody = `{
	"best_flights": [
		{
			"flights": [
				{"airline": "IndiGo", "flight_number": "6E 102",
				 "departure_airport": {"id": "DEL", "time": "2026-09-02 06:30"},
				 "arrival_airport": {"id": "GOI", "time": "2026-09-02 09:05"}}
			],
			"total_duration": 155, "price": 5200
		}
	],
	"other_flights": [
		{
			"flights": [
				{"airline": "Air India", "flight_number": "AI 55",
				 "departure_airport": {"id": "DEL", "time": "2026-09-02 11:00"},
				 "arrival_airport": {"id": "BOM", "time": "2026-09-02 13:10"}},
				{"airline": "Air India", "flight_number": "AI 683",
				 "departure_airport": {"id": "BOM", "time": "2026-09-02 15:00"},
				 "arrival_airport": {"id": "GOI", "time": "2026-09-02 16:10"}}
			],
			"total_duration": 310, "price": 4100
		},
		{
			"flights": [
				{"airline": "Air India", "flight_number": "AI 55",
				 "departure_airport": {"id": "DEL"},
				 "arrival_airport": {"id": "GOI"}}
			],
			"total_duration": 160, "price": 4100
		}
	]
}`

func TestFlightSearch(t *testing.T) {
	var gotQuery map[string]string
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"departure_id":  r.URL.Query().Get("departure_id"),
			"arrival_id":    r.URL.Query().Get("arrival_id"),
			"outbound_date": r.URL.Query().Get("outbound_date"),
		}
		w.Write([]byte(flightsBody))
	})

	tool, err := Tool(Config{
		Search: search,
		Model:  &iataModel{code: "DEL"},
		Now:    func() time.Time { return testNow },
	})
	require.NoError(t, err)

	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:   "call_1",
		Type: "function",
		Function: aisdk.FunctionCall{
			Name:      Name,
			Arguments: json.RawMessage(`{"origin":"Delhi","destination":"Goa","travel_date":"2026-09-02"}`),
		},
	})
	require.NoError(t, err)
	require.False(t, resp.IsError, "body: %s", resp.Content)

	var out FlightSearchOutput
	require.NoError(t, json.Unmarshal(resp.Content, &out))

	assert.Equal(t, "DEL", gotQuery["departure_id"])
	assert.Equal(t, "DEL", gotQuery["arrival_id"], "stub model resolves every location to the same code")
	assert.Equal(t, "2026-09-02", gotQuery["outbound_date"])

	// The duplicate Air India / 4100 entry is dropped.
	require.Len(t, out.Flights, 2)
	assert.Equal(t, 2, out.Count)

	// Ranked order: the one-stop Air India is cheapest but slower with a
	// layover; IndiGo wins on duration and non-stop.
	// IndiGo: price norm 1*0.5, duration 0, layovers 0 -> 0.5
	// Air India: price 0, duration 1*0.3, layovers 0.5*0.2 -> 0.4
	assert.Equal(t, "Air India", out.Flights[0].Airline)
	assert.Equal(t, []string{"AI Recommended", "Best Value"}, out.Flights[0].Tags)
	assert.Equal(t, "IndiGo", out.Flights[1].Airline)
	assert.Nil(t, out.Flights[1].Tags)

	// Multi-stop route path includes the layover city.
	assert.Equal(t, "DEL → BOM → GOI", out.Flights[0].Route)
	assert.Equal(t, "BOM", out.Flights[0].Stops)
	assert.Equal(t, "DEL → GOI", out.Flights[1].Route)
	assert.Equal(t, "Non-stop", out.Flights[1].Stops)

	// Category follows price position: with two options the first third
	// is empty, so the cheaper one lands in Moderate.
	assert.Equal(t, "Moderate", out.Flights[0].Category)
	assert.Equal(t, "Premium", out.Flights[1].Category)

	assert.Contains(t, out.Route, "Delhi (DEL)")
	assert.Contains(t, out.Route, "Goa (DEL)")
}

func TestFlightSearchPastDateMovesToTomorrow(t *testing.T) {
	var gotDate string
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("outbound_date")
		w.Write([]byte(flightsBody))
	})

	tool, err := Tool(Config{
		Search: search,
		Now:    func() time.Time { return testNow },
	})
	require.NoError(t, err)

	_, err = tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{
			Name:      Name,
			Arguments: json.RawMessage(`{"origin":"Delhi","destination":"Goa","travel_date":"2020-01-01"}`),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", gotDate)
}

func TestFlightSearchNoResultsIsToolFailure(t *testing.T) {
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"best_flights": [], "other_flights": []}`))
	})

	tool, err := Tool(Config{
		Search: search,
		Now:    func() time.Time { return testNow },
	})
	require.NoError(t, err)

	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		Function: aisdk.FunctionCall{
			Name:      Name,
			Arguments: json.RawMessage(`{"origin":"Delhi","destination":"Goa","travel_date":"2026-09-02"}`),
		},
	})
	require.NoError(t, err, "transient data failures stay in-band")
	assert.True(t, resp.IsError)
	assert.Contains(t, string(resp.Content), "no flights available")
}

func TestSanitizeDate(t *testing.T) {
	assert.Equal(t, "2026-09-10", sanitizeDate("2026-09-10", testNow))
	assert.Equal(t, "2026-09-02", sanitizeDate("2025-01-01", testNow))
	assert.Equal(t, "2026-09-02", sanitizeDate("not-a-date", testNow))
}

func TestResolveIATARejectsBadCodes(t *testing.T) {
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(flightsBody))
	})

	for _, code := range []string{"UNKNOWN", "D3L", "delhi airport"} {
		tool := &flightTool{
			cfg: Config{
				Search: search,
				Model:  &iataModel{code: code},
				Now:    func() time.Time { return testNow },
			},
			logger: discardLogger(),
		}
		got := tool.resolveIATA(context.Background(), "Delhi")
		assert.Equal(t, "Delhi", got, "code %q must fall back to raw input", code)
	}

	tool := &flightTool{
		cfg: Config{
			Search: search,
			Model:  &iataModel{code: " del "},
			Now:    func() time.Time { return testNow },
		},
		logger: discardLogger(),
	}
	assert.Equal(t, "DEL", tool.resolveIATA(context.Background(), "Delhi"))
}
