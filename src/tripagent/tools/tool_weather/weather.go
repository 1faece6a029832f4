package tool_weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/tripsmith/tripsmith/src/agent"
)

const Name = "get_weather_forecast"

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

const weatherPrompt = `Fetches a real 5-day weather forecast for a city using OpenWeatherMap.

WHEN TO USE THIS TOOL:
- Call once per trip to check conditions at the destination
- Pass the trip start date so the forecast aligns with it when possible

LIMITATIONS:
- Forecasts only cover the next 5 days; travel dates further out fall
  back to the nearest available window with a note
- City names must be resolvable by OpenWeatherMap`

// WeatherInput represents the parameters for get_weather_forecast
type WeatherInput struct {
	City       string `json:"city" required:"true" description:"City name to get weather for (e.g. 'London', 'Tokyo')"`
	TravelDate string `json:"travel_date,omitempty" description:"Trip start date in YYYY-MM-DD format"`
}

// WeatherOutput represents the response from get_weather_forecast
type WeatherOutput struct {
	City     string `json:"city"`
	Forecast string `json:"forecast" description:"Human-readable 5-day forecast summary"`
	Note     string `json:"note,omitempty"`
}

// forecastResponse is the shape of the 5-day / 3-hour forecast endpoint.
type forecastResponse struct {
	Message string `json:"message"`
	List    []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Config holds the weather tool configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Tool returns the get_weather_forecast tool definition.
func Tool(cfg Config) (agent.Tool, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return agent.NewGenericTool(Name, weatherPrompt, func(ctx context.Context, input WeatherInput) (WeatherOutput, error) {
		return fetchForecast(ctx, cfg, input)
	})
}

func fetchForecast(ctx context.Context, cfg Config, input WeatherInput) (WeatherOutput, error) {
	if cfg.APIKey == "" {
		return WeatherOutput{}, fmt.Errorf("OPENWEATHERMAP_API_KEY is not configured")
	}

	params := url.Values{}
	params.Set("q", input.City)
	params.Set("appid", cfg.APIKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return WeatherOutput{}, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return WeatherOutput{}, fmt.Errorf("weather service unreachable for %s: %v", input.City, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return WeatherOutput{}, fmt.Errorf("failed to read weather response: %v", err)
	}

	var data forecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return WeatherOutput{}, fmt.Errorf("failed to decode weather response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := data.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return WeatherOutput{}, fmt.Errorf("error fetching weather for %s: %s", input.City, msg)
	}

	if len(data.List) == 0 {
		return WeatherOutput{}, fmt.Errorf("no weather data available for %s", input.City)
	}

	return summarize(input, &data), nil
}

type dayWeather struct {
	temps      []float64
	conditions []string
}

// summarize folds the 3-hourly entries into per-day highs, lows, and the
// dominant condition, aligned to the travel date when the API window
// covers it.
func summarize(input WeatherInput, data *forecastResponse) WeatherOutput {
	daily := make(map[string]*dayWeather)
	for _, item := range data.List {
		date, _, found := strings.Cut(item.DtTxt, " ")
		if !found || date == "" {
			continue
		}
		day, ok := daily[date]
		if !ok {
			day = &dayWeather{}
			daily[date] = day
		}
		day.temps = append(day.temps, item.Main.Temp)
		if len(item.Weather) > 0 {
			day.conditions = append(day.conditions, item.Weather[0].Description)
		}
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	startIndex := 0
	note := ""
	if input.TravelDate != "" {
		idx := -1
		for i, d := range dates {
			if d == input.TravelDate {
				idx = i
				break
			}
		}
		if idx >= 0 {
			startIndex = idx
		} else {
			note = fmt.Sprintf("Real weather forecasts are only available for the next 5 days. Showing available forecast starting %s for reference.", dates[0])
		}
	}

	end := startIndex + 5
	if end > len(dates) {
		end = len(dates)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "5-Day Weather Forecast for %s:\n\n", titleCase(input.City))
	for _, date := range dates[startIndex:end] {
		day := daily[date]
		if len(day.temps) == 0 {
			continue
		}
		high, low := day.temps[0], day.temps[0]
		for _, temp := range day.temps[1:] {
			if temp > high {
				high = temp
			}
			if temp < low {
				low = temp
			}
		}
		readable := date
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			readable = parsed.Format("Mon, 02 Jan")
		}
		fmt.Fprintf(&sb, "%s: High %.1f°C / Low %.1f°C, %s\n", readable, high, low, dominantCondition(day.conditions))
	}

	return WeatherOutput{
		City:     input.City,
		Forecast: sb.String(),
		Note:     note,
	}
}

func dominantCondition(conditions []string) string {
	if len(conditions) == 0 {
		return "Unknown"
	}
	counts := make(map[string]int)
	best := conditions[0]
	for _, c := range conditions {
		counts[c]++
		if counts[c] > counts[best] {
			best = c
		}
	}
	return titleCase(best)
}

// titleCase uppercases the first letter of every space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
