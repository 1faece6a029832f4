package tripagent

import (
	"fmt"
	"strings"
	"time"
)

// TripRequest is the boundary shape of a planning request.
type TripRequest struct {
	FromCity    string `json:"from_city" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	Days        int    `json:"days" validate:"required,min=1,max=30"`
	Travelers   int    `json:"travelers" validate:"required,min=1,max=10"`
	Budget      string `json:"budget" validate:"required,oneof=Cheap Moderate Luxury"`
	Vibe        string `json:"vibe" validate:"required,oneof=Relaxed Adventure Family Nightlife Cultural"`
	Query       string `json:"query,omitempty"`
}

// Dates returns the sanitized start and checkout dates. Past or
// malformed start dates move two days out.
func (r *TripRequest) Dates(now time.Time) (string, string) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil || start.Before(now.Truncate(24*time.Hour)) {
		start = now.AddDate(0, 0, 2)
	}
	checkout := start.AddDate(0, 0, r.Days)
	return start.Format("2006-01-02"), checkout.Format("2006-01-02")
}

// UserPrompt renders the request as the opening user message, including
// the per-step execution protocol the agent is expected to follow.
func (r *TripRequest) UserPrompt(now time.Time) string {
	startDate, checkoutDate := r.Dates(now)

	var sb strings.Builder
	fmt.Fprintf(&sb, `TRIP PLANNING REQUEST

📋 **TRIP PARAMETERS:**
- Origin: %s
- Destination: %s
- Start Date: %s
- End Date: %s
- Duration: %d days
- Travelers: %d people
- Budget Level: %s
- Trip Vibe: %s
`, r.FromCity, r.Destination, startDate, checkoutDate, r.Days, r.Travelers, r.Budget, r.Vibe)

	if r.Query != "" {
		fmt.Fprintf(&sb, "\n🎨 **SPECIAL REQUESTS:**\n%s\n", r.Query)
	}

	fmt.Fprintf(&sb, `
🤖 **MULTI-AGENT EXECUTION PROTOCOL:**

**STEP 1 - Flight Agent:**
Execute: search_flights(origin="%s", destination="%s", travel_date="%s")
→ Filter by price, layovers, travel time
→ Display ALL flights in Budget/Moderate/Premium categories

**STEP 2 - Hotel Agent:**
Execute: search_hotels(location="%s", check_in_date="%s", check_out_date="%s")
→ Analyze by location, budget, amenities
→ Display ALL hotels in Budget/Moderate/Luxury categories

**STEP 3 - Reasoning Agent (YOU):**
→ Compare flight/hotel alternatives and explain trade-offs
→ Recommend optimal choices based on %s budget and %s vibe

**STEP 4 - Dynamic Itinerary:**
→ Generate %d days of activities using REAL attraction names
→ Include specific costs in ₹ INR

**STEP 5 - Budget Breakdown:**
→ Calculate GRAND TOTAL in ₹ INR (Flights + Hotels + Food + Activities)

Execute this multi-agent workflow now.
`, r.FromCity, r.Destination, startDate,
		r.Destination, startDate, checkoutDate,
		r.Budget, r.Vibe,
		r.Days)

	return sb.String()
}
