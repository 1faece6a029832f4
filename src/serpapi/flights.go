package serpapi

import (
	"context"
	"net/url"
)

// FlightQuery describes a Google Flights search. Departure and arrival
// IDs are IATA location codes.
type FlightQuery struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
	ReturnDate   string
	Currency     string
	Country      string
	Language     string
}

// AirportInfo is one endpoint of a flight leg.
type AirportInfo struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// FlightLeg is a single segment of an itinerary.
type FlightLeg struct {
	DepartureAirport AirportInfo `json:"departure_airport"`
	ArrivalAirport   AirportInfo `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
	TravelClass      string      `json:"travel_class"`
}

// FlightOption is one bookable itinerary, possibly multi-leg.
type FlightOption struct {
	Flights         []FlightLeg `json:"flights"`
	TotalDuration   int         `json:"total_duration"`
	Price           float64     `json:"price"`
	Type            string      `json:"type"`
	CarbonEmissions struct {
		ThisFlight int `json:"this_flight"`
	} `json:"carbon_emissions"`
}

// FlightResults is the google_flights engine response.
type FlightResults struct {
	BestFlights  []FlightOption `json:"best_flights"`
	OtherFlights []FlightOption `json:"other_flights"`
}

// Options returns best and other flights as a single list, best first.
func (r *FlightResults) Options() []FlightOption {
	out := make([]FlightOption, 0, len(r.BestFlights)+len(r.OtherFlights))
	out = append(out, r.BestFlights...)
	out = append(out, r.OtherFlights...)
	return out
}

// SearchFlights queries the google_flights engine. A present ReturnDate
// makes the search round-trip, otherwise one-way.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) (*FlightResults, error) {
	params := url.Values{}
	params.Set("departure_id", q.DepartureID)
	params.Set("arrival_id", q.ArrivalID)
	params.Set("outbound_date", q.OutboundDate)
	params.Set("currency", defaultString(q.Currency, "INR"))
	params.Set("gl", defaultString(q.Country, "in"))
	params.Set("hl", defaultString(q.Language, "en"))
	if q.ReturnDate != "" {
		params.Set("type", "1")
		params.Set("return_date", q.ReturnDate)
	} else {
		params.Set("type", "2")
	}

	var results FlightResults
	if err := c.search(ctx, "google_flights", params, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
