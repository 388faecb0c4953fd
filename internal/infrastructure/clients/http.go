package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nexus_settlement/internal/usecase/interfaces"
)

const maxErrorBody = 512

// remoteError is the error envelope shared by the user and product services.
type remoteError struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// doJSON sends in as a JSON body and returns the status and raw response body.
// Transport failures (including timeouts) are reported as ErrUpstreamUnavailable.
func doJSON(ctx context.Context, c *http.Client, method, url string, in any) (int, []byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", interfaces.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read response: %v", interfaces.ErrUpstreamUnavailable, err)
	}
	return resp.StatusCode, respBody, nil
}

// reason extracts a human readable cause from an error body.
func reason(status int, body []byte) string {
	var re remoteError
	if err := json.Unmarshal(body, &re); err == nil {
		if re.Error != "" {
			return re.Error
		}
		if re.Message != "" {
			return re.Message
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	if text == "" {
		return fmt.Sprintf("HTTP %d", status)
	}
	return text
}
