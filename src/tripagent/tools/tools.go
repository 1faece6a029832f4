// Package tools re-exports the trip planning tools so callers can build
// a toolbox without importing each tool package individually.
package tools

import (
	"github.com/tripsmith/tripsmith/src/agent"
	tool_expense "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_expense"
	tool_flightsearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_flightsearch"
	tool_hotelsearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_hotelsearch"
	tool_placesearch "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_placesearch"
	tool_weather "github.com/tripsmith/tripsmith/src/tripagent/tools/tool_weather"
)

// Tool name constants - re-exported from individual packages
const (
	FlightSearchName = tool_flightsearch.Name
	HotelSearchName  = tool_hotelsearch.Name
	WeatherName      = tool_weather.Name
	AttractionsName  = tool_placesearch.AttractionsName
	RestaurantsName  = tool_placesearch.RestaurantsName
	ActivitiesName   = tool_placesearch.ActivitiesName
	HotelCostName    = tool_expense.HotelCostName
	TotalExpenseName = tool_expense.TotalName
	DailyBudgetName  = tool_expense.DailyBudgetName
)

func FlightSearchTool(cfg tool_flightsearch.Config) (agent.Tool, error) {
	return tool_flightsearch.Tool(cfg)
}

func HotelSearchTool(cfg tool_hotelsearch.Config) (agent.Tool, error) {
	return tool_hotelsearch.Tool(cfg)
}

func WeatherTool(cfg tool_weather.Config) (agent.Tool, error) {
	return tool_weather.Tool(cfg)
}

func PlaceSearchTools(cfg tool_placesearch.Config) ([]agent.Tool, error) {
	return tool_placesearch.Tools(cfg)
}

func ExpenseTools() ([]agent.Tool, error) {
	return tool_expense.Tools()
}
