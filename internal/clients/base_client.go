package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// BaseClient performs the JSON round trips shared by every gateway.
type BaseClient struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

func NewBaseClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *BaseClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger.Named("gateway"),
	}
}

// BaseURL returns the API root the client talks to.
func (c *BaseClient) BaseURL() string {
	return c.baseURL
}

// doRequest sends body (if any) as JSON and decodes a 2xx answer into out (if any).
func (c *BaseClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &APIError{Type: ErrorTypeGeneral, Method: method, Path: path, Message: "failed to marshal request: " + err.Error(), Err: err}
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return NewTransportError(method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return NewTransportError(method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewTransportError(method, path, err)
	}

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("API answered with an error", fields...)
		return NewStatusError(method, path, resp.StatusCode, string(respBody))
	}
	c.logger.Debug("API call", fields...)

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return NewDecodeError(method, path, err)
	}
	return nil
}
