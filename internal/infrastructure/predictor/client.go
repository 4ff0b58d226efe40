// Package predictor wraps the external ML prediction services. Each service
// is an opaque HTTP capability: POST /predict with a feature payload, JSON
// result back.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls one prediction service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Predict forwards the feature payload to the service and returns its raw
// JSON result. The payload is not interpreted on the way in or out.
func (c *Client) Predict(ctx context.Context, features interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction service unreachable: %w", err)
	}
	defer resp.Body.Close()

	// 1MB is far beyond any legitimate prediction result.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("prediction service returned invalid JSON")
	}

	return json.RawMessage(data), nil
}
