package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// uploadResponse is the storage API reply to an object upload.
type uploadResponse struct {
	Key string `json:"Key"`
}

// ObjectPath returns the storage path for a source file: "<notebook>/<source>.<ext>".
func ObjectPath(notebookID, sourceID, fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s.%s", notebookID, sourceID, strings.ToLower(ext))
}

// Upload stores the raw file bytes and returns the object path.
// An empty path with a nil error means the storage accepted the request
// but did not report where the object lives.
func (c *Client) Upload(ctx context.Context, notebookID, sourceID, fileName, contentType string, data []byte) (string, error) {
	objectPath := ObjectPath(notebookID, sourceID, fileName)
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload: bad status %d: %s", resp.StatusCode, string(raw))
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uploaded.Key == "" {
		return "", nil
	}
	return strings.TrimPrefix(uploaded.Key, c.Bucket+"/"), nil
}
