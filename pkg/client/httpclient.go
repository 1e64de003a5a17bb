package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HttpClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHttpClient(baseURL string) *HttpClient {
	return &HttpClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (c *HttpClient) GET(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil, nil)
}

func (c *HttpClient) POST(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body, nil)
}

func (c *HttpClient) POSTWithHeaders(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body, headers)
}

func (c *HttpClient) request(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	var reqBody io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Response: resp,
		Body:     respBody,
	}, nil
}

// WaitForHealthy polls /health until it answers 200 or maxWait elapses.
func (c *HttpClient) WaitForHealthy(ctx context.Context, maxWait time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		resp, err := c.GET(ctx, "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("service did not become healthy within %v", maxWait)
		case <-ticker.C:
		}
	}
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("classbook: %d %s", e.StatusCode, e.Message)
}

func GetErrorMessage(resp *Response) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := resp.DecodeJSON(&errResp); err != nil {
		return fmt.Sprintf("failed to unmarshal error: %v", err)
	}
	return errResp.Error
}

func decodeOrError(resp *Response, want int, target any) error {
	if resp.StatusCode != want {
		return &APIError{StatusCode: resp.StatusCode, Message: GetErrorMessage(resp)}
	}
	if err := resp.DecodeJSON(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
