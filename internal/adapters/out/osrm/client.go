// Package osrm implements the route provider port against an OSRM-compatible
// routing engine over HTTP.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/ports"
	"kurir/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client calls the OSRM /route/v1/driving endpoint to measure road distance
// between two points.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an OSRM client for the given base URL, e.g.
// "http://localhost:5000". A zero timeout falls back to a short default so a
// slow routing engine cannot stall order intake.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// routeResponse is the subset of the OSRM route response the client reads.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetDistance measures the driving leg from one point to another.
// Network failures and 5xx responses surface as a DependencyUnavailableError
// so callers can fall back to an estimate; a rejected request (4xx or an OSRM
// error code) is reported as an invalid value instead.
func (c *Client) GetDistance(ctx context.Context, from, to kernel.GeoPoint) (ports.RouteLeg, error) {
	if err := from.Validate(); err != nil {
		return ports.RouteLeg{}, err
	}
	if err := to.Validate(); err != nil {
		return ports.RouteLeg{}, err
	}

	// OSRM takes lon,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL, from.Lon(), from.Lat(), to.Lon(), to.Lat())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.RouteLeg{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RouteLeg{}, errs.NewDependencyUnavailableError("osrm", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return ports.RouteLeg{}, errs.NewDependencyUnavailableError(
			"osrm", fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ports.RouteLeg{}, errs.NewValueIsInvalidErrorWithCause(
			"route request", fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var parsed routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.RouteLeg{}, errs.NewDependencyUnavailableError("osrm", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return ports.RouteLeg{}, errs.NewValueIsInvalidErrorWithCause(
			"route request", fmt.Errorf("osrm code %q with %d routes", parsed.Code, len(parsed.Routes)))
	}

	route := parsed.Routes[0]
	return ports.RouteLeg{
		DistanceMeters:  int(math.Round(route.Distance)),
		DurationSeconds: int(math.Round(route.Duration)),
	}, nil
}
