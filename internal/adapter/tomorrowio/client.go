// Package tomorrowio fetches realtime observations from the Tomorrow.io
// weather API and maps them onto the domain model.
package tomorrowio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ATTron/zweather/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Client talks to the Tomorrow.io v4 API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	clock      clockwork.Clock
}

// NewClient creates a Tomorrow.io client. baseURL is the API root without a
// trailing slash, e.g. "https://api.tomorrow.io/v4".
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
	}
}

// SetClock swaps the time source used for duration and data-age logging.
// Pass nil to reset to the real clock.
func (c *Client) SetClock(clock clockwork.Clock) {
	if clock == nil {
		c.clock = clockwork.NewRealClock()
		return
	}
	c.clock = clock
}

// Realtime fetches the current conditions for a location. The location may
// be a place name, a "lat,lon" pair, or anything else the API resolves. The
// request always asks for metric values: the API's native temperature unit
// is Celsius and all display conversion belongs to the report composer.
func (c *Client) Realtime(ctx context.Context, location string) (domain.Observation, error) {
	params := url.Values{
		"location": {location},
		"units":    {"metric"},
		"apikey":   {c.apiKey},
	}
	fullURL := c.baseURL + "/weather/realtime?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("realtime request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Observation{}, apiError(resp)
	}

	var payload realtimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Observation{}, fmt.Errorf("decode response: %w", err)
	}

	obs := payload.toObservation(location)
	c.logger.Debug("realtime fetch complete",
		"location", location,
		"duration", c.clock.Since(start),
		"data_age", dataAge(c.clock, obs.ObservedAt),
	)
	return obs, nil
}

// apiError converts a non-200 response into an error carrying the status
// and a body snippet. Common statuses get an actionable hint.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("tomorrow.io API error: status %d: %s (check TOMORROW_API_KEY)", resp.StatusCode, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("tomorrow.io API error: status %d: rate limited: %s", resp.StatusCode, body)
	default:
		return fmt.Errorf("tomorrow.io API error: status %d: %s", resp.StatusCode, body)
	}
}

func dataAge(clock clockwork.Clock, observedAt time.Time) time.Duration {
	if observedAt.IsZero() {
		return 0
	}
	return clock.Since(observedAt)
}

// Tomorrow.io API response types. Measurement fields are pointers so a
// field absent from the payload stays absent; extra fields are ignored.

type realtimeResponse struct {
	Data struct {
		Time   time.Time `json:"time"`
		Values values    `json:"values"`
	} `json:"data"`
	Location struct {
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Name string  `json:"name"`
	} `json:"location"`
}

type values struct {
	WeatherCode              *int     `json:"weatherCode"`
	Temperature              *float64 `json:"temperature"`
	TemperatureApparent      *float64 `json:"temperatureApparent"`
	Humidity                 *float64 `json:"humidity"`
	PrecipitationProbability *float64 `json:"precipitationProbability"`
	WindSpeed                *float64 `json:"windSpeed"`
	UVIndex                  *float64 `json:"uvIndex"`
}

// toObservation maps the payload to the domain model. The resolved place
// name is preferred; the raw query is the fallback so the report header is
// never blank. Required-field enforcement happens in the composer, not here.
func (r realtimeResponse) toObservation(query string) domain.Observation {
	name := r.Location.Name
	if name == "" {
		name = query
	}
	v := r.Data.Values
	return domain.Observation{
		LocationName:             name,
		ConditionCode:            v.WeatherCode,
		Temperature:              v.Temperature,
		TemperatureApparent:      v.TemperatureApparent,
		Humidity:                 v.Humidity,
		PrecipitationProbability: v.PrecipitationProbability,
		WindSpeed:                v.WindSpeed,
		UVIndex:                  v.UVIndex,
		ObservedAt:               r.Data.Time,
	}
}
