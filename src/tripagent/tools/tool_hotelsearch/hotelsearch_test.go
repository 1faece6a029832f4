package tool_hotelsearch

import (
	"context"
	"encoding/json"
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

func newSearchClient(t *testing.T, handler http.HandlerFunc) *serpapi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := serpapi.NewClient(serpapi.Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

const hotelsBody = `{
	"properties": [
		{"name": "Budget Inn", "overall_rating": 4.1,
		 "rate_per_night": {"lowest": "₹3,200", "extracted_lowest": 3200},
		 "vicinity": "Calangute", "amenities": ["Wi-Fi", "Breakfast", "AC", "Pool"]},
		{"name": "Low Rated Lodge", "overall_rating": 3.2,
		 "rate_per_night": {"extracted_lowest": 1500}},
		{"name": "Grand Resort", "overall_rating": 4.8,
		 "rate_per_night": {"extracted_lowest": 18000},
		 "gps_coordinates": {"address": "Candolim Beach Road"}},
		{"name": "Grand Resort", "overall_rating": 4.8,
		 "rate_per_night": {"extracted_lowest": 18000}},
		{"name": "Mid Hotel", "overall_rating": 4.5,
		 "rate_per_night": {"extracted_lowest": 7000}},
		{"name": "No Price Palace", "overall_rating": 4.9,
		 "rate_per_night": {"lowest": "unavailable"}}
	]
}`

func execute(t *testing.T, tool interface {
	Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error)
}, args string) *aisdk.ToolResponse {
	t.Helper()
	resp, err := tool.Execute(context.Background(), &aisdk.ToolCall{
		ID:   "call_1",
		Type: "function",
		Function: aisdk.FunctionCall{
			Name:      Name,
			Arguments: json.RawMessage(args),
		},
	})
	require.NoError(t, err)
	return resp
}

func TestHotelSearch(t *testing.T) {
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hotels in Goa", r.URL.Query().Get("q"))
		w.Write([]byte(hotelsBody))
	})

	tool, err := Tool(Config{Search: search, Now: func() time.Time { return testNow }})
	require.NoError(t, err)

	resp := execute(t, tool, `{"location":"Goa","check_in_date":"2026-09-02","check_out_date":"2026-09-05"}`)
	require.False(t, resp.IsError, "body: %s", resp.Content)

	var out HotelSearchOutput
	require.NoError(t, json.Unmarshal(resp.Content, &out))

	assert.Equal(t, "Goa", out.Location)
	assert.Equal(t, 3, out.Nights)

	// Low rated, unpriced, and duplicate entries are filtered.
	require.Len(t, out.Hotels, 3)
	assert.Equal(t, CategoryStats{Budget: 1, Moderate: 1, Luxury: 1}, out.Stats)

	// Band order: Budget, then Moderate, then Luxury.
	assert.Equal(t, "Budget Inn", out.Hotels[0].Name)
	assert.Equal(t, "Budget", out.Hotels[0].Category)
	assert.Equal(t, "Mid Hotel", out.Hotels[1].Name)
	assert.Equal(t, "Moderate", out.Hotels[1].Category)
	assert.Equal(t, "Grand Resort", out.Hotels[2].Name)
	assert.Equal(t, "Luxury", out.Hotels[2].Category)

	// Per-stay totals and trimmed amenities.
	assert.Equal(t, 9600.0, out.Hotels[0].TotalPrice)
	assert.Equal(t, "Wi-Fi, Breakfast, AC", out.Hotels[0].Amenities)

	// Highest rating wins the recommendation.
	require.NotNil(t, out.Recommended)
	assert.Equal(t, "Grand Resort", out.Recommended.SelectedHotel.Name)
	assert.NotEmpty(t, out.Recommended.Justification)
}

func TestHotelSearchNoQualifyingHotels(t *testing.T) {
	search := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": [{"name": "Shack", "overall_rating": 2.0, "rate_per_night": {"extracted_lowest": 900}}]}`))
	})

	tool, err := Tool(Config{Search: search, Now: func() time.Time { return testNow }})
	require.NoError(t, err)

	resp := execute(t, tool, `{"location":"Goa","check_in_date":"2026-09-02","check_out_date":"2026-09-05"}`)
	assert.True(t, resp.IsError)
	assert.Contains(t, string(resp.Content), "no 4-star+ hotels")
}

func TestSanitizeStay(t *testing.T) {
	checkIn, checkOut, nights := sanitizeStay("2026-09-10", "2026-09-13", testNow)
	assert.Equal(t, "2026-09-10", checkIn)
	assert.Equal(t, "2026-09-13", checkOut)
	assert.Equal(t, 3, nights)

	// Past check-in resets to a short stay starting tomorrow.
	checkIn, checkOut, nights = sanitizeStay("2020-01-01", "2020-01-05", testNow)
	assert.Equal(t, "2026-09-02", checkIn)
	assert.Equal(t, "2026-09-04", checkOut)
	assert.Equal(t, 2, nights)

	// Inverted dates clamp to one night.
	_, _, nights = sanitizeStay("2026-09-10", "2026-09-08", testNow)
	assert.Equal(t, 1, nights)

	// Garbage input resets entirely.
	checkIn, _, nights = sanitizeStay("soon", "later", testNow)
	assert.Equal(t, "2026-09-02", checkIn)
	assert.Equal(t, 2, nights)
}
