package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to the backend-as-a-service: object storage and edge functions.
type Client struct {
	BaseURL string
	APIKey  string
	Bucket  string
	client  *http.Client
}

// NewClient creates a new backend client.
// Requests carry no client-side timeout; callers bound them through ctx if needed.
func NewClient(baseURL, apiKey, bucket string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Bucket:  bucket,
		client:  http.DefaultClient,
	}
}

func (c *Client) authorize(req *http.Request) {
	if c.APIKey == "" {
		return
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("apikey", c.APIKey)
}

// invoke calls an edge function with a JSON body and decodes the JSON reply into out when out is non-nil.
func (c *Client) invoke(ctx context.Context, function string, payload any, out any) error {
	url := fmt.Sprintf("%s/functions/v1/%s", c.BaseURL, function)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: bad status %d: %s", function, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", function, err)
	}
	return nil
}
