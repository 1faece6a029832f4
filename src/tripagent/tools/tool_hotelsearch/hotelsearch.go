package tool_hotelsearch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/rank"
	"github.com/tripsmith/tripsmith/src/serpapi"
)

const Name = "search_hotels"

const hotelSearchPrompt = `Searches hotels at a destination via Google Hotels and returns
categorized options.

WHEN TO USE THIS TOOL:
- Call once per trip with the destination and stay dates

FEATURES:
- Only properties rated 4.0 or higher with a known price are returned
- Results are grouped into Budget, Moderate, and Luxury price bands,
  up to 10 per band, cheapest first
- Includes a single recommended pick balancing rating and price
- Past or inverted dates are moved to the next valid stay

LIMITATIONS:
- Prices are quoted in the configured currency (INR by default)`

// HotelSearchInput represents the parameters for search_hotels
type HotelSearchInput struct {
	Location     string `json:"location" required:"true" description:"City or location name"`
	CheckInDate  string `json:"check_in_date" required:"true" description:"Check-in date YYYY-MM-DD"`
	CheckOutDate string `json:"check_out_date" required:"true" description:"Check-out date YYYY-MM-DD"`
}

// HotelResult is one processed hotel option.
type HotelResult struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	Location      string  `json:"location"`
	Amenities     string  `json:"amenities"`
	Category      string  `json:"category"`
}

// HotelSearchOutput represents the response from search_hotels
type HotelSearchOutput struct {
	Location    string                    `json:"location"`
	Nights      int                       `json:"nights"`
	Hotels      []HotelResult             `json:"hotels"`
	Recommended *rank.HotelRecommendation `json:"recommended,omitempty"`
	Stats       CategoryStats             `json:"stats"`
	Currency    string                    `json:"currency"`
}

// CategoryStats counts hotels per price band.
type CategoryStats struct {
	Budget   int `json:"budget"`
	Moderate int `json:"moderate"`
	Luxury   int `json:"luxury"`
}

// Price band boundaries, per night.
const (
	budgetCeiling   = 5000
	moderateCeiling = 15000
)

const (
	minRating        = 4.0
	maxScanned       = 50
	maxPerCategory   = 10
	maxAddressLength = 75
)

// Config holds the hotel search tool configuration.
type Config struct {
	Search   *serpapi.Client
	Currency string
	Logger   *slog.Logger
	Now      func() time.Time
}

// Tool returns the search_hotels tool definition.
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
	t := &hotelTool{cfg: cfg, logger: cfg.Logger.With("tool", Name)}
	return agent.NewGenericTool(Name, hotelSearchPrompt, t.handle)
}

type hotelTool struct {
	cfg    Config
	logger *slog.Logger
}

func (t *hotelTool) handle(ctx context.Context, input HotelSearchInput) (HotelSearchOutput, error) {
	checkIn, checkOut, nights := sanitizeStay(input.CheckInDate, input.CheckOutDate, t.cfg.Now())

	t.logger.Info("searching hotels", "location", input.Location, "nights", nights)

	results, err := t.cfg.Search.SearchHotels(ctx, serpapi.HotelQuery{
		Query:        "hotels in " + input.Location,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Currency:     t.cfg.Currency,
	})
	if err != nil {
		return HotelSearchOutput{}, fmt.Errorf("hotel search failed for %s: %v", input.Location, err)
	}
	if len(results.Properties) == 0 {
		return HotelSearchOutput{}, fmt.Errorf("no hotels found in %s", input.Location)
	}

	options := filterProperties(results.Properties, input.Location, nights)
	if len(options) == 0 {
		return HotelSearchOutput{}, fmt.Errorf("no 4-star+ hotels found in %s", input.Location)
	}

	hotels, stats := categorize(options)

	recommended, err := rank.SelectHotel(options)
	if err != nil {
		return HotelSearchOutput{}, err
	}

	return HotelSearchOutput{
		Location:    input.Location,
		Nights:      nights,
		Hotels:      hotels,
		Recommended: recommended,
		Stats:       stats,
		Currency:    t.cfg.Currency,
	}, nil
}

// sanitizeStay moves past or malformed stays to a one-night stay
// starting tomorrow and clamps the stay to at least one night.
func sanitizeStay(checkInDate, checkOutDate string, now time.Time) (string, string, int) {
	checkIn, errIn := time.Parse("2006-01-02", checkInDate)
	checkOut, errOut := time.Parse("2006-01-02", checkOutDate)

	if errIn != nil || errOut != nil || checkIn.Before(now.Truncate(24*time.Hour)) {
		checkIn = now.AddDate(0, 0, 1)
		checkOut = checkIn.AddDate(0, 0, 2)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"), nights
}

// filterProperties keeps well-rated, priced properties from the raw
// engine output, deduplicated by name.
func filterProperties(properties []serpapi.HotelProperty, location string, nights int) []rank.Hotel {
	var options []rank.Hotel
	seen := make(map[string]bool)

	limit := len(properties)
	if limit > maxScanned {
		limit = maxScanned
	}

	for _, prop := range properties[:limit] {
		if prop.Name == "" || seen[prop.Name] {
			continue
		}
		if prop.OverallRating < minRating {
			continue
		}
		price := prop.RatePerNight.ExtractedLowest
		if price == 0 {
			continue
		}
		seen[prop.Name] = true

		addr := prop.GPSCoordinates.Address
		if addr == "" {
			addr = prop.Vicinity
		}
		if addr == "" {
			addr = "Near " + location
		}
		if len(addr) > maxAddressLength {
			addr = addr[:maxAddressLength] + "..."
		}

		amenities := prop.Amenities
		if len(amenities) > 3 {
			amenities = amenities[:3]
		}

		rating := prop.OverallRating
		options = append(options, rank.Hotel{
			Name:          prop.Name,
			Rating:        &rating,
			Reviews:       prop.Reviews,
			PricePerNight: price,
			TotalPrice:    price * float64(nights),
			Location:      addr,
			Amenities:     amenities,
			Link:          prop.Link,
		})
	}

	return options
}

// categorize splits hotels into price bands, cheapest first within each
// band, capped per band.
func categorize(options []rank.Hotel) ([]HotelResult, CategoryStats) {
	var budget, moderate, luxury []rank.Hotel
	for _, h := range options {
		switch {
		case h.PricePerNight < budgetCeiling:
			budget = append(budget, h)
		case h.PricePerNight < moderateCeiling:
			moderate = append(moderate, h)
		default:
			luxury = append(luxury, h)
		}
	}

	budget = sortAndCap(budget)
	moderate = sortAndCap(moderate)
	luxury = sortAndCap(luxury)

	var hotels []HotelResult
	for _, group := range []struct {
		name    string
		entries []rank.Hotel
	}{
		{"Budget", budget},
		{"Moderate", moderate},
		{"Luxury", luxury},
	} {
		for _, h := range group.entries {
			hotels = append(hotels, toResult(h, group.name))
		}
	}

	return hotels, CategoryStats{
		Budget:   len(budget),
		Moderate: len(moderate),
		Luxury:   len(luxury),
	}
}

func sortAndCap(hotels []rank.Hotel) []rank.Hotel {
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].PricePerNight < hotels[j].PricePerNight
	})
	if len(hotels) > maxPerCategory {
		hotels = hotels[:maxPerCategory]
	}
	return hotels
}

func toResult(h rank.Hotel, category string) HotelResult {
	rating := 0.0
	if h.Rating != nil {
		rating = *h.Rating
	}
	amenities := "Standard"
	if len(h.Amenities) > 0 {
		amenities = strings.Join(h.Amenities, ", ")
	}
	return HotelResult{
		Name:          h.Name,
		Rating:        rating,
		PricePerNight: h.PricePerNight,
		TotalPrice:    h.TotalPrice,
		Location:      h.Location,
		Amenities:     amenities,
		Category:      category,
	}
}
