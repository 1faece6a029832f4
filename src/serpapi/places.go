package serpapi

import (
	"context"
	"net/url"
)

// PlaceQuery describes a Google Maps place search, e.g.
// "top attractions in Kyoto".
type PlaceQuery struct {
	Query    string
	Language string
}

// Place is one local result from the google_maps engine.
type Place struct {
	Title       string   `json:"title"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Type        string   `json:"type"`
	Types       []string `json:"types"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Price       string   `json:"price"`
}

// PlaceResults is the google_maps engine response.
type PlaceResults struct {
	LocalResults []Place `json:"local_results"`
}

// SearchPlaces queries the google_maps engine.
func (c *Client) SearchPlaces(ctx context.Context, q PlaceQuery) (*PlaceResults, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("type", "search")
	params.Set("hl", defaultString(q.Language, "en"))

	var results PlaceResults
	if err := c.search(ctx, "google_maps", params, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
