package backend

import (
	"context"
	"time"
)

const (
	fnProcessDocument          = "process-document"
	fnGenerateNotebookContent  = "generate-notebook-content"
	fnProcessAdditionalSources = "process-additional-sources"
	fnRefreshAudioURL          = "refresh-audio-url"
)

// Webhook payload kinds for the batched ingestion endpoint.
const (
	KindCopiedText       = "copied-text"
	KindMultipleWebsites = "multiple-websites"
)

type processDocumentRequest struct {
	SourceID   string `json:"sourceId"`
	FilePath   string `json:"filePath"`
	SourceType string `json:"sourceType"`
}

type generateContentRequest struct {
	NotebookID string `json:"notebookId"`
	FilePath   string `json:"filePath"`
	SourceType string `json:"sourceType"`
}

// AdditionalSourcesRequest is the batched payload for text and website ingestion.
type AdditionalSourcesRequest struct {
	Type       string    `json:"type"`
	NotebookID string    `json:"notebookId"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content,omitempty"`
	URLs       []string  `json:"urls,omitempty"`
	SourceIDs  []string  `json:"sourceIds"`
	Timestamp  time.Time `json:"timestamp"`
}

// AudioURL is a freshly signed audio overview URL.
type AudioURL struct {
	URL       string    `json:"audioUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProcessDocument asks the backend to extract and analyse an uploaded file.
func (c *Client) ProcessDocument(ctx context.Context, sourceID, filePath, kind string) error {
	return c.invoke(ctx, fnProcessDocument, processDocumentRequest{
		SourceID:   sourceID,
		FilePath:   filePath,
		SourceType: kind,
	}, nil)
}

// GenerateNotebookContent asks the backend to derive notebook content from an uploaded file.
func (c *Client) GenerateNotebookContent(ctx context.Context, notebookID, filePath, kind string) error {
	return c.invoke(ctx, fnGenerateNotebookContent, generateContentRequest{
		NotebookID: notebookID,
		FilePath:   filePath,
		SourceType: kind,
	}, nil)
}

// ProcessAdditionalSources sends a batch of text or website sources to the webhook endpoint.
func (c *Client) ProcessAdditionalSources(ctx context.Context, req AdditionalSourcesRequest) error {
	return c.invoke(ctx, fnProcessAdditionalSources, req, nil)
}

// RefreshAudioURL re-signs the audio overview URL of a notebook.
func (c *Client) RefreshAudioURL(ctx context.Context, notebookID string) (AudioURL, error) {
	var out AudioURL
	err := c.invoke(ctx, fnRefreshAudioURL, map[string]string{"notebookId": notebookID}, &out)
	return out, err
}
