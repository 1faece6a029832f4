// Package tool_placesearch provides the three place discovery tools:
// attractions, restaurants, and activities. All run the same search
// against the maps engine with a query template per tool, falling back
// to scraping a web travel guide when the engine returns nothing.
package tool_placesearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tripsmith/tripsmith/src/agent"
	"github.com/tripsmith/tripsmith/src/serpapi"
)

// Tool name constants
const (
	AttractionsName = "search_attractions"
	RestaurantsName = "search_restaurants"
	ActivitiesName  = "search_activities"
)

const attractionsPrompt = `Finds real tourist attractions and sightseeing spots in a city.

WHEN TO USE THIS TOOL:
- Call before writing the itinerary; find at least 3 distinct spots per
  trip day
- Never invent place names; only use names this tool returns`

const restaurantsPrompt = `Finds real restaurants and dining options in a city.

WHEN TO USE THIS TOOL:
- Call before writing the itinerary to place lunches and dinners
- Match the results to the traveler's vibe where possible`

const activitiesPrompt = `Finds bookable activities and experiences in a city
(nightlife, adventure, tours).

WHEN TO USE THIS TOOL:
- Call when the traveler's vibe asks for nightlife or adventure
- Use the returned names verbatim in the itinerary`

// PlaceSearchInput represents the parameters shared by the place tools.
type PlaceSearchInput struct {
	City string `json:"city" required:"true" description:"City to search in (e.g. 'Goa', 'Kyoto')"`
}

// PlaceResult is one discovered place.
type PlaceResult struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
	Type        string  `json:"type,omitempty"`
	Address     string  `json:"address,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       string  `json:"price,omitempty"`
}

// PlaceSearchOutput represents the response from any place tool.
type PlaceSearchOutput struct {
	City   string        `json:"city"`
	Query  string        `json:"query"`
	Places []PlaceResult `json:"places,omitempty"`
	// Guide carries scraped travel-guide markdown when the maps engine
	// returned no usable places.
	Guide  string `json:"guide,omitempty"`
	Source string `json:"source"`
}

// Config holds the place search tool configuration.
type Config struct {
	Search *serpapi.Client
	// Guide provides the web fallback. Optional; without it an empty
	// engine result is a tool failure.
	Guide  *GuideFetcher
	Logger *slog.Logger
}

const maxPlaces = 15

// Tools returns all three place tools.
func Tools(cfg Config) ([]agent.Tool, error) {
	if cfg.Search == nil {
		return nil, fmt.Errorf("serpapi client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	specs := []struct {
		name     string
		prompt   string
		template string
	}{
		{AttractionsName, attractionsPrompt, "top attractions and sightseeing spots in %s"},
		{RestaurantsName, restaurantsPrompt, "best restaurants and local food in %s"},
		{ActivitiesName, activitiesPrompt, "activities, nightlife and experiences in %s"},
	}

	tools := make([]agent.Tool, 0, len(specs))
	for _, spec := range specs {
		spec := spec
		tool, err := agent.NewGenericTool(spec.name, spec.prompt,
			func(ctx context.Context, input PlaceSearchInput) (PlaceSearchOutput, error) {
				query := fmt.Sprintf(spec.template, input.City)
				return searchPlaces(ctx, cfg, input.City, query)
			})
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

func searchPlaces(ctx context.Context, cfg Config, city, query string) (PlaceSearchOutput, error) {
	logger := cfg.Logger.With("tool", "place_search", "city", city)

	results, err := cfg.Search.SearchPlaces(ctx, serpapi.PlaceQuery{Query: query})
	if err == nil && len(results.LocalResults) > 0 {
		places := make([]PlaceResult, 0, len(results.LocalResults))
		for _, p := range results.LocalResults {
			if p.Title == "" {
				continue
			}
			places = append(places, PlaceResult{
				Name:        p.Title,
				Rating:      p.Rating,
				Reviews:     p.Reviews,
				Type:        p.Type,
				Address:     p.Address,
				Description: p.Description,
				Price:       p.Price,
			})
			if len(places) >= maxPlaces {
				break
			}
		}
		if len(places) > 0 {
			logger.Info("places found", "count", len(places))
			return PlaceSearchOutput{
				City:   city,
				Query:  query,
				Places: places,
				Source: "maps",
			}, nil
		}
	}
	if err != nil {
		logger.Warn("maps search failed, trying guide fallback", "error", err)
	}

	if cfg.Guide == nil {
		return PlaceSearchOutput{}, fmt.Errorf("no places found for %q", query)
	}

	guide, guideErr := cfg.Guide.Fetch(ctx, query)
	if guideErr != nil {
		return PlaceSearchOutput{}, fmt.Errorf("no places found for %q: %v", query, guideErr)
	}

	logger.Info("served guide fallback", "bytes", len(guide))
	return PlaceSearchOutput{
		City:   city,
		Query:  query,
		Guide:  guide,
		Source: "guide",
	}, nil
}
