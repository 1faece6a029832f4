package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFlightsEmpty(t *testing.T) {
	ranked := RankFlights(nil)
	assert.Empty(t, ranked)
}

func TestRankFlightsOrderingAndTags(t *testing.T) {
	flights := []Flight{
		{Airline: "Expensive Slow", Price: 900, DurationMinutes: 600, Layovers: 2},
		{Airline: "Cheap Fast Direct", Price: 300, DurationMinutes: 360, Layovers: 0},
		{Airline: "Mid", Price: 600, DurationMinutes: 480, Layovers: 1},
	}

	ranked := RankFlights(flights)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Cheap Fast Direct", ranked[0].Airline)
	assert.Equal(t, "Expensive Slow", ranked[2].Airline)

	// scores ascending
	assert.LessOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.LessOrEqual(t, ranked[1].Score, ranked[2].Score)

	// only the winner is tagged
	assert.Equal(t, []string{"AI Recommended", "Best Value"}, ranked[0].Tags)
	assert.Nil(t, ranked[1].Tags)
	assert.Nil(t, ranked[2].Tags)

	// input untouched
	assert.Zero(t, flights[0].Score)
	assert.Nil(t, flights[1].Tags)
}

func TestRankFlightsScoreComputation(t *testing.T) {
	flights := []Flight{
		{Airline: "A", Price: 100, DurationMinutes: 100, Layovers: 0},
		{Airline: "B", Price: 200, DurationMinutes: 200, Layovers: 1},
	}

	ranked := RankFlights(flights)
	require.Len(t, ranked, 2)

	// A: all normalized metrics zero
	assert.Equal(t, "A", ranked[0].Airline)
	assert.Equal(t, 0.0, ranked[0].Score)

	// B: 1*0.50 + 1*0.30 + 0.5*0.20 = 0.9
	assert.Equal(t, "B", ranked[1].Airline)
	assert.Equal(t, 0.9, ranked[1].Score)
}

func TestRankFlightsScoreRounding(t *testing.T) {
	flights := []Flight{
		{Airline: "A", Price: 100, DurationMinutes: 90, Layovers: 0},
		{Airline: "B", Price: 103, DurationMinutes: 97, Layovers: 0},
		{Airline: "C", Price: 109, DurationMinutes: 111, Layovers: 0},
	}

	for _, f := range RankFlights(flights) {
		assert.Equal(t, round4(f.Score), f.Score, "score must carry at most 4 decimals")
	}
}

func TestRankFlightsIdenticalMetrics(t *testing.T) {
	// Degenerate ranges must not divide by zero; every flight scores
	// identically and the original order is preserved.
	flights := []Flight{
		{Airline: "First", Price: 500, DurationMinutes: 400, Layovers: 0},
		{Airline: "Second", Price: 500, DurationMinutes: 400, Layovers: 0},
		{Airline: "Third", Price: 500, DurationMinutes: 400, Layovers: 0},
	}

	ranked := RankFlights(flights)
	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Airline)
	assert.Equal(t, "Second", ranked[1].Airline)
	assert.Equal(t, "Third", ranked[2].Airline)
	for _, f := range ranked {
		assert.Equal(t, 0.0, f.Score)
	}
}

func TestRankFlightsLayoverCap(t *testing.T) {
	flights := []Flight{
		{Airline: "TwoStops", Price: 100, DurationMinutes: 100, Layovers: 2},
		{Airline: "FourStops", Price: 100, DurationMinutes: 100, Layovers: 4},
	}

	ranked := RankFlights(flights)
	// both layover contributions cap at 1.0, so scores tie
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, 0.2, ranked[0].Score)
}

func TestFlightReasons(t *testing.T) {
	tests := []struct {
		name   string
		flight Flight
		want   string
	}{
		{
			name:   "best on everything",
			flight: Flight{Layovers: 0},
			want:   "Lowest Price, Fastest Route, Non-stop",
		},
		{
			name:   "single stop",
			flight: Flight{Layovers: 1},
			want:   "Lowest Price, Fastest Route, 1 Short Stop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flightReason(&tt.flight, 0, 0)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("near best", func(t *testing.T) {
		got := flightReason(&Flight{Layovers: 2}, 0.15, 0.2)
		assert.Equal(t, "Great Value, Quick Flight", got)
	})

	t.Run("nothing notable", func(t *testing.T) {
		got := flightReason(&Flight{Layovers: 3}, 0.7, 0.9)
		assert.Equal(t, "Balanced Option", got)
	})
}
