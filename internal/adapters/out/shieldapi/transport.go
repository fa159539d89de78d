package shieldapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// HTTPTransport implements the Transport port over plain HTTP against the
// coordination server endpoint.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPTransport creates a new HTTP transport for the given server endpoint,
// e.g. "http://localhost:8080". The timeout bounds every request.
func NewHTTPTransport(endpoint string, timeout time.Duration, logger *slog.Logger) (*HTTPTransport, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPTransport{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Get performs a GET request against the given path and returns the body.
func (t *HTTPTransport) Get(ctx context.Context, path string) (string, error) {
	return t.do(ctx, http.MethodGet, path, "")
}

// Post performs a POST request with the given body and returns the response body.
func (t *HTTPTransport) Post(ctx context.Context, path string, body string) (string, error) {
	return t.do(ctx, http.MethodPost, path, body)
}

func (t *HTTPTransport) do(ctx context.Context, method string, path string, body string) (string, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.endpoint+path, reader)
	if err != nil {
		return "", fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.ErrorContext(ctx, "request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response for %s %s: %w", method, path, err)
	}

	t.logger.DebugContext(ctx, "request completed",
		"method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	return string(data), nil
}
