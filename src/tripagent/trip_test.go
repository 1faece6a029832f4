package tripagent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestDates(t *testing.T) {
	req := &TripRequest{StartDate: "2026-10-01", Days: 4}
	start, checkout := req.Dates(testNow)
	assert.Equal(t, "2026-10-01", start)
	assert.Equal(t, "2026-10-05", checkout)
}

func TestDatesPastStartMovesForward(t *testing.T) {
	req := &TripRequest{StartDate: "2026-01-15", Days: 3}
	start, checkout := req.Dates(testNow)
	assert.Equal(t, "2026-09-03", start)
	assert.Equal(t, "2026-09-06", checkout)
}

func TestDatesMalformedStart(t *testing.T) {
	req := &TripRequest{StartDate: "next tuesday", Days: 2}
	start, _ := req.Dates(testNow)
	assert.Equal(t, "2026-09-03", start)
}

func TestUserPrompt(t *testing.T) {
	req := &TripRequest{
		FromCity:    "Delhi",
		Destination: "Goa",
		StartDate:   "2026-10-01",
		Days:        4,
		Travelers:   2,
		Budget:      "Moderate",
		Vibe:        "Relaxed",
	}
	prompt := req.UserPrompt(testNow)

	assert.Contains(t, prompt, "TRIP PLANNING REQUEST")
	assert.Contains(t, prompt, "- Origin: Delhi")
	assert.Contains(t, prompt, "- Destination: Goa")
	assert.Contains(t, prompt, "- Start Date: 2026-10-01")
	assert.Contains(t, prompt, "- End Date: 2026-10-05")
	assert.Contains(t, prompt, "- Duration: 4 days")
	assert.Contains(t, prompt, `search_flights(origin="Delhi", destination="Goa", travel_date="2026-10-01")`)
	assert.Contains(t, prompt, `search_hotels(location="Goa", check_in_date="2026-10-01", check_out_date="2026-10-05")`)
	assert.NotContains(t, prompt, "SPECIAL REQUESTS")
}

func TestUserPromptWithQuery(t *testing.T) {
	req := &TripRequest{
		FromCity:    "Delhi",
		Destination: "Goa",
		StartDate:   "2026-10-01",
		Days:        2,
		Travelers:   1,
		Budget:      "Cheap",
		Vibe:        "Adventure",
		Query:       "must include scuba diving",
	}
	prompt := req.UserPrompt(testNow)

	assert.Contains(t, prompt, "SPECIAL REQUESTS")
	assert.Contains(t, prompt, "must include scuba diving")
}
