package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestSearchFlights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google_flights", q.Get("engine"))
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "DEL", q.Get("departure_id"))
		assert.Equal(t, "LHR", q.Get("arrival_id"))
		assert.Equal(t, "2", q.Get("type"), "no return date means one-way")
		assert.Equal(t, "INR", q.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"best_flights": [
				{"flights": [{"airline": "Air India", "departure_airport": {"id": "DEL"}, "arrival_airport": {"id": "LHR"}}], "total_duration": 555, "price": 42000}
			],
			"other_flights": [
				{"flights": [{"airline": "Lufthansa"}, {"airline": "Lufthansa"}], "total_duration": 700, "price": 38000}
			]
		}`))
	})

	results, err := client.SearchFlights(context.Background(), FlightQuery{
		DepartureID:  "DEL",
		ArrivalID:    "LHR",
		OutboundDate: "2026-10-01",
	})
	require.NoError(t, err)

	options := results.Options()
	require.Len(t, options, 2)
	assert.Equal(t, "Air India", options[0].Flights[0].Airline)
	assert.Equal(t, 42000.0, options[0].Price)
	assert.Len(t, options[1].Flights, 2)
}

func TestSearchFlightsRoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("type"))
		assert.Equal(t, "2026-10-10", q.Get("return_date"))
		w.Write([]byte(`{}`))
	})

	_, err := client.SearchFlights(context.Background(), FlightQuery{
		DepartureID:  "BOM",
		ArrivalID:    "CDG",
		OutboundDate: "2026-10-01",
		ReturnDate:   "2026-10-10",
	})
	require.NoError(t, err)
}

func TestSearchHotels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google_hotels", q.Get("engine"))
		assert.Equal(t, "hotels in Kyoto", q.Get("q"))
		assert.Equal(t, "8", q.Get("sort_by"))

		w.Write([]byte(`{
			"properties": [
				{"name": "Grand Kyoto", "overall_rating": 4.6, "rate_per_night": {"lowest": "₹9,200", "extracted_lowest": 9200}, "amenities": ["Wi-Fi", "Pool"]}
			]
		}`))
	})

	results, err := client.SearchHotels(context.Background(), HotelQuery{
		Query:        "hotels in Kyoto",
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-04",
	})
	require.NoError(t, err)
	require.Len(t, results.Properties, 1)
	assert.Equal(t, "Grand Kyoto", results.Properties[0].Name)
	assert.Equal(t, 9200.0, results.Properties[0].RatePerNight.ExtractedLowest)
}

func TestSearchInBandError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Google Flights hasn't returned any results for this query."}`))
	})

	_, err := client.SearchFlights(context.Background(), FlightQuery{
		DepartureID: "XXX", ArrivalID: "YYY", OutboundDate: "2026-10-01",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "google_flights", apiErr.Engine)
}

func TestSearchHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`bad gateway`))
	})

	_, err := client.SearchPlaces(context.Background(), PlaceQuery{Query: "museums in Paris"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "503")
}
