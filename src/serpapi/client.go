package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// ErrNoAPIKey is returned when the client is constructed without credentials.
var ErrNoAPIKey = errors.New("serpapi: API key is required")

// APIError is an in-band error reported by SerpAPI inside an otherwise
// well-formed response body.
type APIError struct {
	Engine  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("serpapi %s: %s", e.Engine, e.Message)
}

// Config holds the SerpAPI client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the SerpAPI search endpoint. All engines share the
// same GET surface; only the query parameters differ.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a SerpAPI client.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     config.Logger.With("component", "serpapi_client"),
	}, nil
}

// search performs a GET against the search endpoint for the given
// engine and decodes the body into out.
func (c *Client) search(ctx context.Context, engine string, params url.Values, out interface{}) error {
	params.Set("engine", engine)
	params.Set("api_key", c.config.APIKey)

	reqURL := c.config.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("searching", "engine", engine)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// SerpAPI reports engine failures in-band, sometimes alongside a
	// non-2xx status. Surface the message either way.
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		return &APIError{Engine: engine, Message: probe.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Engine: engine, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", engine, err)
	}
	return nil
}
