package serpapi

import (
	"context"
	"net/url"
)

// HotelQuery describes a Google Hotels search.
type HotelQuery struct {
	Query        string
	CheckInDate  string
	CheckOutDate string
	Adults       string
	Currency     string
	Country      string
	Language     string
}

// HotelProperty is one property from the google_hotels engine.
type HotelProperty struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	OverallRating  float64 `json:"overall_rating"`
	Reviews        int     `json:"reviews"`
	HotelClass     string  `json:"hotel_class"`
	Vicinity       string  `json:"vicinity"`
	Link           string  `json:"link"`
	RatePerNight   Rate    `json:"rate_per_night"`
	TotalRate      Rate    `json:"total_rate"`
	Amenities      []string `json:"amenities"`
	GPSCoordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address"`
	} `json:"gps_coordinates"`
}

// Rate is a price as the engine reports it: a display string plus the
// numeric value with currency markers stripped.
type Rate struct {
	Lowest          string  `json:"lowest"`
	ExtractedLowest float64 `json:"extracted_lowest"`
}

// HotelResults is the google_hotels engine response.
type HotelResults struct {
	Properties []HotelProperty `json:"properties"`
}

// SearchHotels queries the google_hotels engine, sorted by lowest price
// for filterable volume.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) (*HotelResults, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("check_in_date", q.CheckInDate)
	params.Set("check_out_date", q.CheckOutDate)
	params.Set("adults", defaultString(q.Adults, "2"))
	params.Set("currency", defaultString(q.Currency, "INR"))
	params.Set("gl", defaultString(q.Country, "in"))
	params.Set("hl", defaultString(q.Language, "en"))
	params.Set("sort_by", "8")

	var results HotelResults
	if err := c.search(ctx, "google_hotels", params, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
