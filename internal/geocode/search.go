package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mzagar/openmeteo/internal/location"
	"github.com/mzagar/openmeteo/internal/model"
)

// StatusError represents a non-success response from Nominatim.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoding api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// searchResult is one row of the jsonv2 response. Nominatim serves
// coordinates as strings.
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search looks up a free-text query and returns candidates in Nominatim's
// relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]location.Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	fullURL := c.baseURL + "/search.php?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("geocoding lookup", "query", query)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	places := make([]location.Place, 0, len(results))
	for i, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("result %d: parse latitude %q: %w", i, r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("result %d: parse longitude %q: %w", i, r.Lon, err)
		}
		places = append(places, location.Place{
			DisplayName: r.DisplayName,
			Coord:       model.Coordinate{Latitude: lat, Longitude: lon},
		})
	}

	c.logger.Debug("geocoding results", "query", query, "count", len(places))
	return places, nil
}
