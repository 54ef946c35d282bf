package management

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"routerstat/pkg/logging"
)

const defaultTimeout = 30 * time.Second

// HTTPClient reaches the management agent through its JSON HTTP bridge.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPClient creates a client for the HTTP bridge at opts.Endpoint.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	httpClient, err := newHTTPTransportClient(opts)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		httpClient: httpClient,
		endpoint:   strings.TrimSuffix(opts.Endpoint, "/"),
	}, nil
}

// newHTTPTransportClient builds the *http.Client shared by every transport,
// carrying the configured timeout and TLS material.
func newHTTPTransportClient(opts Options) (*http.Client, error) {
	tlsConfig, err := newTLSConfig(opts.TLS)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
	}, nil
}

// Query implements Client.
func (c *HTTPClient) Query(ctx context.Context, entityType string, attributeNames []string, limit int) ([]Entity, error) {
	req := newQueryRequest(entityType, attributeNames, limit)
	logging.Debug("HTTPClient", "QUERY %s count=%d correlationId=%s", entityType, req.Count, req.CorrelationID)

	data, err := c.post(ctx, "/query", req)
	if err != nil {
		return nil, c.wrapStatus(err, "QUERY", entityType)
	}
	return decodeQueryResponse(data)
}

// GetLog implements Client.
func (c *HTTPClient) GetLog(ctx context.Context, limit int) ([]LogRecord, error) {
	req := newLogRequest(limit)
	logging.Debug("HTTPClient", "GET-LOG limit=%d correlationId=%s", req.Limit, req.CorrelationID)

	data, err := c.post(ctx, "/log", req)
	if err != nil {
		return nil, c.wrapStatus(err, "GET-LOG", "")
	}
	return decodeLogResponse(data)
}

// Close implements Client.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// statusError carries a non-2xx answer until it is tagged with the
// operation that produced it.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.code)
}

func (c *HTTPClient) wrapStatus(err error, operation, entityType string) error {
	if se, ok := err.(*statusError); ok {
		description := se.body
		if description == "" {
			description = http.StatusText(se.code)
		}
		return &QueryError{
			Operation:   operation,
			EntityType:  entityType,
			StatusCode:  se.code,
			Description: description,
		}
	}
	return err
}

func (c *HTTPClient) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Debug("HTTPClient", "POST %s%s returned %d", c.endpoint, path, resp.StatusCode)
		return nil, &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(data))}
	}

	return data, nil
}
