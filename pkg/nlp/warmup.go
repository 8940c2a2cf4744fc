package nlp

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	warmUpProbeTimeout = 8 * time.Second
	warmUpRetryDelay   = 3 * time.Second
)

// WarmUp polls the service base URL until it answers, waking hosts that
// sleep between requests. Attempts are unbounded; cancel the context to
// stop. Returns the number of attempts made.
func (c *Client) WarmUp(ctx context.Context) int {
	probe := &http.Client{Timeout: warmUpProbeTimeout}
	attempts := 0

	for {
		attempts++

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
		if err != nil {
			slog.Error("warm-up request failed to build", "url", c.baseURL, "error", err)
			return attempts
		}

		resp, err := probe.Do(req)
		if err == nil {
			resp.Body.Close()
			slog.Info("NLP service is awake", "attempts", attempts, "status", resp.StatusCode)
			return attempts
		}

		slog.Info("NLP service not ready yet", "attempt", attempts)

		select {
		case <-ctx.Done():
			return attempts
		case <-time.After(warmUpRetryDelay):
		}
	}
}
