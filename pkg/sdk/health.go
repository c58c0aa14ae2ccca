package memoria

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Health reports the server's health. An unhealthy server (503) is not an
// error: its report is returned with Status "error".
func (c *Client) Health(ctx context.Context) (hs HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	var raw healthWire
	err = c.do(ctx, http.MethodGet, "/health", nil, &raw)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
		raw = healthWire{Status: "error"}
		_ = json.Unmarshal(apiErr.body, &raw)
		err = nil
	}
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	if raw.Status == "" {
		return HealthStatus{}, fmt.Errorf("health: %w: missing field \"status\"", ErrUnexpectedResponse)
	}
	if raw.Checks == nil {
		raw.Checks = map[string]string{}
	}
	return HealthStatus{Status: raw.Status, Version: raw.Version, Checks: raw.Checks}, nil
}
