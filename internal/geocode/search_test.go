package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient points a Client at a fake Nominatim with a limiter loose
// enough to never block the test.
func newTestClient(ts *httptest.Server, opts ...ClientOption) *Client {
	opts = append([]ClientOption{WithRateLimit(1000, 10)}, opts...)
	return NewClient(ts.URL, opts...)
}

func TestSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.php" {
			t.Errorf("path = %q, want /search.php", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "zagreb" {
			t.Errorf("q = %q, want %q", got, "zagreb")
		}
		if got := r.URL.Query().Get("format"); got != "jsonv2" {
			t.Errorf("format = %q, want %q", got, "jsonv2")
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q, want %q", got, "test-agent")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Zagreb, Croatia", "lat": "45.8130967", "lon": "15.9772795"},
			{"display_name": "Zagreb, Bosnia", "lat": "44.0", "lon": "17.0"}
		]`))
	}))
	defer ts.Close()

	c := newTestClient(ts, WithUserAgent("test-agent"))

	places, err := c.Search(context.Background(), "zagreb")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(places) != 2 {
		t.Fatalf("got %d places, want 2", len(places))
	}
	if places[0].DisplayName != "Zagreb, Croatia" {
		t.Errorf("DisplayName = %q", places[0].DisplayName)
	}
	if places[0].Coord.Latitude != 45.8130967 || places[0].Coord.Longitude != 15.9772795 {
		t.Errorf("Coord = %+v", places[0].Coord)
	}
}

func TestSearchEmptyResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	places, err := newTestClient(ts).Search(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(places) != 0 {
		t.Errorf("got %d places, want 0", len(places))
	}
}

func TestSearchStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Search(context.Background(), "zagreb")

	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if serr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", serr.StatusCode)
	}
}

func TestSearchMalformedCoordinate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"display_name": "x", "lat": "not-a-number", "lon": "15"}]`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts).Search(context.Background(), "x"); err == nil {
		t.Fatal("expected error for malformed latitude")
	}
}

func TestSearchHonorsContextDuringRateLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	// Burst 1 at a very low rate: the first call consumes the burst, the
	// second has to wait and should bail out with the context.
	c := NewClient(ts.URL, WithRateLimit(0.001, 1))

	if _, err := c.Search(context.Background(), "first"); err != nil {
		t.Fatalf("first Search failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Search(ctx, "second"); err == nil {
		t.Fatal("expected rate-limited Search to fail with expired context")
	}
}
