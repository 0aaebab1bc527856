package api

import (
	"encoding/json"
	"fmt"
)

// forecastResponse from GET /forecast with hourly variables.
type forecastResponse struct {
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Timezone    string            `json:"timezone"`
	HourlyUnits map[string]string `json:"hourly_units"`
	Hourly      hourlyBlock       `json:"hourly"`
}

// hourlyBlock is the hourly payload. Besides the shared time axis the field
// names depend on the request (bare for one model, model-suffixed for
// several), so every series is kept dynamic and pulled out by name.
type hourlyBlock struct {
	Time   []string
	Series map[string][]*float64
}

func (h *hourlyBlock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if msg, ok := raw["time"]; ok {
		if err := json.Unmarshal(msg, &h.Time); err != nil {
			return fmt.Errorf("hourly.time: %w", err)
		}
		delete(raw, "time")
	}

	h.Series = make(map[string][]*float64, len(raw))
	for key, msg := range raw {
		var vals []*float64
		if err := json.Unmarshal(msg, &vals); err != nil {
			return fmt.Errorf("hourly.%s: %w", key, err)
		}
		h.Series[key] = vals
	}

	return nil
}

// column pulls a named series and checks it is aligned with the time axis.
func (h *hourlyBlock) column(key string, wantLen int) ([]*float64, error) {
	vals, ok := h.Series[key]
	if !ok {
		return nil, &SchemaError{Field: "hourly." + key, Reason: "missing"}
	}
	if len(vals) != wantLen {
		return nil, &SchemaError{
			Field:  "hourly." + key,
			Reason: fmt.Sprintf("%d values for %d timestamps", len(vals), wantLen),
		}
	}
	return vals, nil
}

// currentResponse from GET /forecast with current variables.
type currentResponse struct {
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timezone     string            `json:"timezone"`
	CurrentUnits map[string]string `json:"current_units"`
	Current      currentBlock      `json:"current"`
}

type currentBlock struct {
	Time          string   `json:"time"`
	Temperature   *float64 `json:"temperature_2m"`
	Precipitation *float64 `json:"precipitation"`
}
