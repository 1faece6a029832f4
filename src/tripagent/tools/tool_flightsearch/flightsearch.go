package tool_flightsearch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/aisdk"
	"github.com/tripsmith/tripsmith/src/rank"
	"github.com/tripsmith/tripsmith/src/serpapi"
)

const Name = "search_flights"

const flightSearchPrompt = `Searches flights between cities worldwide via Google Flights.

WHEN TO USE THIS TOOL:
- Call once per trip with origin, destination, and departure date
- Provide a return date for round-trip searches

FEATURES:
- City names are resolved to IATA codes automatically; no need to know
  airport codes
- Results are scored on price, duration, and layovers, and grouped into
  Budget, Moderate, and Premium categories
- Past or malformed dates are moved to the next valid day

LIMITATIONS:
- At most 9 unique options are returned
- Prices are quoted in the configured currency (INR by default)`

// FlightSearchInput represents the parameters for search_flights
type FlightSearchInput struct {
	Origin      string `json:"origin" required:"true" description:"Origin city or airport (e.g. 'Delhi', 'New York')"`
	Destination string `json:"destination" required:"true" description:"Destination city or airport (e.g. 'Chennai', 'London')"`
	TravelDate  string `json:"travel_date" required:"true" description:"Departure date YYYY-MM-DD"`
	ReturnDate  string `json:"return_date,omitempty" description:"Return date YYYY-MM-DD for round trips"`
}

// FlightResult is one processed flight option.
type FlightResult struct {
	Airline              string   `json:"airline"`
	FlightNumber         string   `json:"flight_number"`
	Price                float64  `json:"price"`
	PriceFormatted       string   `json:"price_formatted"`
	DepartureTime        string   `json:"departure_time"`
	DepartureAirport     string   `json:"departure_airport"`
	ArrivalTime          string   `json:"arrival_time"`
	ArrivalAirport       string   `json:"arrival_airport"`
	Duration             string   `json:"duration"`
	DurationMinutes      int      `json:"duration_minutes"`
	Stops                string   `json:"stops"`
	Layovers             int      `json:"layovers"`
	Route                string   `json:"route"`
	CarbonEmissions      int      `json:"carbon_emissions,omitempty"`
	Score                float64  `json:"score"`
	RecommendationReason string   `json:"recommendation_reason"`
	Tags                 []string `json:"tags,omitempty"`
	Category             string   `json:"category"`
	Recommendation       string   `json:"recommendation"`
}

// FlightSearchOutput represents the response from search_flights
type FlightSearchOutput struct {
	Route      string         `json:"route"`
	SearchDate string         `json:"search_date"`
	Flights    []FlightResult `json:"flights"`
	Count      int            `json:"count"`
	Currency   string         `json:"currency"`
	AgentNote  string         `json:"agent_note"`
}

// Config holds the flight search tool configuration. Model is used to
// resolve free-text locations into IATA codes before searching.
type Config struct {
	Search   *serpapi.Client
	Model    aisdk.ModelClient
	Currency string
	Logger   *slog.Logger
	// Now is the clock used for date sanitation. Defaults to time.Now;
	// tests pass a fixed clock.
	Now func() time.Time
}

const maxProcessedFlights = 9

// Tool returns the search_flights tool definition.
func Tool(cfg Config) (agent.Tool, error) {
	if cfg.Search == nil {
		return nil, fmt.Errorf("serpapi client is required")
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	t := &flightTool{cfg: cfg, logger: cfg.Logger.With("tool", Name)}
	return agent.NewGenericTool(Name, flightSearchPrompt, t.handle)
}

type flightTool struct {
	cfg    Config
	logger *slog.Logger
}

func (t *flightTool) handle(ctx context.Context, input FlightSearchInput) (FlightSearchOutput, error) {
	originCode := t.resolveIATA(ctx, input.Origin)
	destCode := t.resolveIATA(ctx, input.Destination)
	travelDate := sanitizeDate(input.TravelDate, t.cfg.Now())

	t.logger.Info("searching flights",
		"origin", originCode, "destination", destCode, "date", travelDate)

	results, err := t.cfg.Search.SearchFlights(ctx, serpapi.FlightQuery{
		DepartureID:  originCode,
		ArrivalID:    destCode,
		OutboundDate: travelDate,
		ReturnDate:   input.ReturnDate,
		Currency:     t.cfg.Currency,
	})
	if err != nil {
		return FlightSearchOutput{}, fmt.Errorf("could not find flights from %s (%s) to %s (%s): %v",
			input.Origin, originCode, input.Destination, destCode, err)
	}

	flights, routes := processOptions(results.Options())

	// No availability on the requested day: retry one week out before
	// giving up.
	if len(flights) == 0 {
		fallbackDate := t.cfg.Now().AddDate(0, 0, 7).Format("2006-01-02")
		t.logger.Info("no flights found, trying fallback date", "date", fallbackDate)

		fallback, err := t.cfg.Search.SearchFlights(ctx, serpapi.FlightQuery{
			DepartureID:  originCode,
			ArrivalID:    destCode,
			OutboundDate: fallbackDate,
			Currency:     t.cfg.Currency,
		})
		if err == nil {
			flights, routes = processOptions(fallback.Options())
		}
		if len(flights) == 0 {
			return FlightSearchOutput{}, fmt.Errorf("no flights available for %s to %s even on fallback dates",
				input.Origin, input.Destination)
		}
		travelDate = fallbackDate
	}

	return FlightSearchOutput{
		Route:      fmt.Sprintf("%s (%s) → %s (%s)", input.Origin, originCode, input.Destination, destCode),
		SearchDate: travelDate,
		Flights:    annotate(rank.RankFlights(flights), routes),
		Count:      len(flights),
		Currency:   t.cfg.Currency,
		AgentNote:  "Flight options evaluated on price, duration, and layovers",
	}, nil
}

const iataSystemPrompt = `Convert the given city into a Google Flights COMPATIBLE LOCATION CODE.

RULES (STRICT):
- Prefer PRIMARY AIRPORT code if Google Flights uses airports
- Prefer METRO CODE only if commonly used (NYC, LAX)
- Examples:
    Paris -> CDG
    London -> LHR
    New York -> NYC
    Los Angeles -> LAX
    Istanbul -> IST
- Output ONLY ONE uppercase 3-letter code
- No explanation`

// resolveIATA asks the model to translate a free-text location into a
// 3-letter code. Falls back to the raw input when the model is absent
// or answers with anything that is not exactly three letters.
func (t *flightTool) resolveIATA(ctx context.Context, location string) string {
	if t.cfg.Model == nil {
		return location
	}

	resp, err := t.cfg.Model.CreateChatCompletion(ctx, &aisdk.ChatCompletionRequest{
		Messages: []*aisdk.Message{
			{Role: aisdk.RoleSystem, Content: iataSystemPrompt},
			{Role: aisdk.RoleUser, Content: "Location: " + location},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		t.logger.Warn("IATA resolution failed, using raw location", "location", location, "error", err)
		return location
	}

	code := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	if len(code) != 3 || !isAlpha(code) {
		t.logger.Warn("IATA resolution returned unusable code", "location", location, "code", code)
		return location
	}
	return code
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// sanitizeDate moves past or malformed departure dates to tomorrow.
func sanitizeDate(date string, now time.Time) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil || parsed.Before(now.Truncate(24*time.Hour)) {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	return date
}

// routeInfo carries display strings built from the full leg path.
type routeInfo struct {
	route  string // "VGA → BOM → HYD"
	stops  string // "BOM" or "Non-stop"
	carbon int
}

// processOptions flattens the raw itineraries into scored-ready flight
// records: route path across legs, layover count, deduplicated by
// airline and price, capped at maxProcessedFlights. The returned map is
// keyed by the dedup key and holds route display strings per flight.
func processOptions(options []serpapi.FlightOption) ([]rank.Flight, map[string]routeInfo) {
	var flights []rank.Flight
	routes := make(map[string]routeInfo)
	seen := make(map[string]bool)

	for _, opt := range options {
		if len(flights) >= maxProcessedFlights {
			break
		}
		if len(opt.Flights) == 0 {
			continue
		}

		first := opt.Flights[0]
		last := opt.Flights[len(opt.Flights)-1]

		key := flightKey(first.Airline, opt.Price)
		if seen[key] {
			continue
		}
		seen[key] = true

		// Route path: origin, every intermediate stop, destination. A
		// stop is the arrival airport of any leg before the last.
		path := []string{first.DepartureAirport.ID}
		var stopCities []string
		for _, leg := range opt.Flights[:len(opt.Flights)-1] {
			stopCities = append(stopCities, leg.ArrivalAirport.ID)
			path = append(path, leg.ArrivalAirport.ID)
		}
		path = append(path, last.ArrivalAirport.ID)

		stops := "Non-stop"
		if len(stopCities) > 0 {
			stops = strings.Join(stopCities, ", ")
		}
		routes[key] = routeInfo{
			route:  strings.Join(path, " → "),
			stops:  stops,
			carbon: opt.CarbonEmissions.ThisFlight,
		}

		flights = append(flights, rank.Flight{
			Airline:          first.Airline,
			FlightNumber:     first.FlightNumber,
			DepartureAirport: first.DepartureAirport.ID,
			ArrivalAirport:   last.ArrivalAirport.ID,
			DepartureTime:    formatTime(first.DepartureAirport.Time),
			ArrivalTime:      formatTime(last.ArrivalAirport.Time),
			Price:            opt.Price,
			DurationMinutes:  opt.TotalDuration,
			Layovers:         len(opt.Flights) - 1,
			TravelClass:      first.TravelClass,
		})
	}

	return flights, routes
}

func flightKey(airline string, price float64) string {
	return fmt.Sprintf("%s_%v", airline, price)
}

// formatTime renders an engine timestamp ("2006-01-02 15:04" or bare
// "15:04") in 12-hour form, passing unparseable values through.
func formatTime(raw string) string {
	if raw == "" {
		return "N/A"
	}
	layouts := []string{"2006-01-02 15:04", "15:04"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("03:04 PM")
		}
	}
	return raw
}

// annotate converts ranked flights into results carrying display fields
// and a Budget/Moderate/Premium category assigned by price position.
func annotate(ranked []rank.Flight, routes map[string]routeInfo) []FlightResult {
	results := make([]FlightResult, len(ranked))
	for i, f := range ranked {
		info := routes[flightKey(f.Airline, f.Price)]
		results[i] = FlightResult{
			Airline:              f.Airline,
			FlightNumber:         f.FlightNumber,
			Price:                f.Price,
			PriceFormatted:       fmt.Sprintf("₹%.0f", f.Price),
			DepartureTime:        f.DepartureTime,
			DepartureAirport:     f.DepartureAirport,
			ArrivalTime:          f.ArrivalTime,
			ArrivalAirport:       f.ArrivalAirport,
			Duration:             fmt.Sprintf("%dh %dm", f.DurationMinutes/60, f.DurationMinutes%60),
			DurationMinutes:      f.DurationMinutes,
			Stops:                info.stops,
			Layovers:             f.Layovers,
			Route:                info.route,
			CarbonEmissions:      info.carbon,
			Score:                f.Score,
			RecommendationReason: f.RecommendationReason,
			Tags:                 f.Tags,
		}
	}

	// Category follows price order, not score order.
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := results[order[a]], results[order[b]]
		if x.Price != y.Price {
			return x.Price < y.Price
		}
		if x.DurationMinutes != y.DurationMinutes {
			return x.DurationMinutes < y.DurationMinutes
		}
		return x.Layovers < y.Layovers
	})

	total := len(order)
	for pos, idx := range order {
		switch {
		case pos < total/3:
			results[idx].Category = "Budget"
			results[idx].Recommendation = "Most economical option"
		case pos < 2*total/3:
			results[idx].Category = "Moderate"
			results[idx].Recommendation = "Good balance of price and convenience"
		default:
			results[idx].Category = "Premium"
			results[idx].Recommendation = "Best service and timing"
		}
	}

	return results
}

