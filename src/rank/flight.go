package rank

import (
	"math"
	"sort"
	"strings"
)

// Scoring weights. Lower composite score is better.
const (
	WeightPrice    = 0.50
	WeightDuration = 0.30
	WeightLayovers = 0.20
)

// Flight is a single flight option as produced by flight search.
// Score, RecommendationReason, and Tags are filled in by RankFlights.
type Flight struct {
	Airline              string   `json:"airline"`
	FlightNumber         string   `json:"flight_number,omitempty"`
	DepartureAirport     string   `json:"departure_airport"`
	ArrivalAirport       string   `json:"arrival_airport"`
	DepartureTime        string   `json:"departure_time,omitempty"`
	ArrivalTime          string   `json:"arrival_time,omitempty"`
	Price                float64  `json:"price"`
	DurationMinutes      int      `json:"duration_minutes"`
	Layovers             int      `json:"layovers"`
	TravelClass          string   `json:"travel_class,omitempty"`
	BookingLink          string   `json:"booking_link,omitempty"`
	Score                float64  `json:"score"`
	RecommendationReason string   `json:"recommendation_reason,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
}

// RankFlights scores every flight on price, duration, and layovers and
// returns the list sorted by score ascending. Price and duration are
// min-max normalized across the input set; layovers contribute 0.5 per
// stop, capped at 1.0. The top flight is tagged as the recommended pick.
// The input slice is not modified.
func RankFlights(flights []Flight) []Flight {
	if len(flights) == 0 {
		return []Flight{}
	}

	minPrice, maxPrice := flights[0].Price, flights[0].Price
	minDuration, maxDuration := flights[0].DurationMinutes, flights[0].DurationMinutes
	for _, f := range flights[1:] {
		minPrice = math.Min(minPrice, f.Price)
		maxPrice = math.Max(maxPrice, f.Price)
		if f.DurationMinutes < minDuration {
			minDuration = f.DurationMinutes
		}
		if f.DurationMinutes > maxDuration {
			maxDuration = f.DurationMinutes
		}
	}

	priceRange := maxPrice - minPrice
	if priceRange <= 0 {
		priceRange = 1
	}
	durationRange := float64(maxDuration - minDuration)
	if durationRange <= 0 {
		durationRange = 1
	}

	ranked := make([]Flight, len(flights))
	copy(ranked, flights)

	for i := range ranked {
		f := &ranked[i]
		normPrice := (f.Price - minPrice) / priceRange
		normDuration := float64(f.DurationMinutes-minDuration) / durationRange
		normLayovers := math.Min(float64(f.Layovers)*0.5, 1.0)

		score := normPrice*WeightPrice + normDuration*WeightDuration + normLayovers*WeightLayovers
		f.Score = round4(score)
		f.RecommendationReason = flightReason(f, normPrice, normDuration)
		f.Tags = nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	ranked[0].Tags = []string{"AI Recommended", "Best Value"}

	return ranked
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// flightReason builds a human-readable justification from the
// normalized metrics.
func flightReason(f *Flight, normPrice, normDuration float64) string {
	var reasons []string

	if normPrice == 0 {
		reasons = append(reasons, "Lowest Price")
	} else if normPrice <= 0.2 {
		reasons = append(reasons, "Great Value")
	}

	if normDuration == 0 {
		reasons = append(reasons, "Fastest Route")
	} else if normDuration <= 0.2 {
		reasons = append(reasons, "Quick Flight")
	}

	if f.Layovers == 0 {
		reasons = append(reasons, "Non-stop")
	} else if f.Layovers == 1 {
		reasons = append(reasons, "1 Short Stop")
	}

	if len(reasons) == 0 {
		return "Balanced Option"
	}
	return strings.Join(reasons, ", ")
}
