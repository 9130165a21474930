// Package api is the boundary to the external mood-analysis backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mirrorlab/moodmirror/internal/logger"
)

// DefaultBaseURL is the backend origin the browser app hardcoded.
const DefaultBaseURL = "http://localhost:8000"

const (
	textEndpoint  = "/api/analyze/text"
	imageEndpoint = "/api/analyze/image"
)

// Result is the analysis response contract: an emotion label, an intensity
// score in [0,100] and an optional caption describing the detected content.
type Result struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
	Caption string  `json:"caption,omitempty"`
}

// Client issues analysis requests against a single backend origin.
// Neither call retries; a failure surfaces immediately.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given origin, falling back to DefaultBaseURL
// when baseURL is empty. No explicit timeout is configured; requests are
// bounded only by the transport default and the caller's context.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AnalyzeText submits free text for emotion classification.
func (c *Client) AnalyzeText(ctx context.Context, text string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode text payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+textEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build text request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, OpAnalyzeText)
}

// AnalyzeImage submits the file at path as multipart form data under the
// field name "image".
func (c *Client) AnalyzeImage(ctx context.Context, path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &NetworkError{Op: OpAnalyzeImage, Err: err}
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &NetworkError{Op: OpAnalyzeImage, Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+imageEndpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, OpAnalyzeImage)
}

// Ping checks whether the backend origin is reachable at all. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "ping", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(req *http.Request, op string) (*Result, error) {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("analysis request failed", "op", op, "request_id", requestID, "error", err)
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		logger.Warn("analysis request rejected", "op", op, "request_id", requestID, "status", resp.StatusCode)
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Warn("analysis response unreadable", "op", op, "request_id", requestID, "error", err)
		return nil, &NetworkError{Op: op, Err: err}
	}

	logger.Debug("analysis completed", "op", op, "request_id", requestID, "emotion", result.Emotion, "score", result.Score)
	return &result, nil
}
