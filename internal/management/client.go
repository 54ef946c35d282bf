package management

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Client is the management interface the report engine consumes.
type Client interface {
	// Query returns the entities of entityType. A nil attributeNames
	// requests every attribute; limit <= 0 is unbounded.
	Query(ctx context.Context, entityType string, attributeNames []string, limit int) ([]Entity, error)
	// GetLog returns the most recent log records. limit <= 0 is unbounded.
	GetLog(ctx context.Context, limit int) ([]LogRecord, error)
	// Close releases the underlying connection.
	Close() error
}

// TransportType selects how the management endpoint is reached.
type TransportType string

const (
	TransportHTTP           TransportType = "http"
	TransportStreamableHTTP TransportType = "streamable-http"
	TransportSSE            TransportType = "sse"
)

// ValidTransports lists the supported transport names.
var ValidTransports = []TransportType{TransportHTTP, TransportStreamableHTTP, TransportSSE}

// TLSOptions holds the optional client TLS material.
type TLSOptions struct {
	CACertPath         string
	CertPath           string
	KeyPath            string
	InsecureSkipVerify bool
}

// Options configures a management client.
type Options struct {
	Endpoint  string
	Transport TransportType
	Timeout   time.Duration
	TLS       TLSOptions
}

// NewClient creates and connects a client for the configured transport.
func NewClient(ctx context.Context, opts Options) (Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("management endpoint is not configured")
	}

	switch opts.Transport {
	case TransportHTTP, "":
		return NewHTTPClient(opts)
	case TransportStreamableHTTP, TransportSSE:
		return NewMCPClient(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported transport: %s", opts.Transport)
	}
}

// newTLSConfig builds the client TLS configuration. Unlike a silent
// fallback, unreadable certificate files are reported.
func newTLSConfig(opts TLSOptions) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: opts.InsecureSkipVerify,
	}

	if opts.CACertPath != "" {
		caCert, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("no certificates found in %s", opts.CACertPath)
		}
		tlsConfig.RootCAs = caCertPool
	}

	if opts.CertPath != "" || opts.KeyPath != "" {
		if opts.CertPath == "" || opts.KeyPath == "" {
			return nil, fmt.Errorf("client certificate and key must be given together")
		}
		cert, err := tls.LoadX509KeyPair(opts.CertPath, opts.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// queryRequest mirrors the body of a management QUERY operation.
type queryRequest struct {
	CorrelationID  string   `json:"correlationId"`
	EntityType     string   `json:"entityType"`
	AttributeNames []string `json:"attributeNames,omitempty"`
	Count          int      `json:"count,omitempty"`
}

// logRequest mirrors the body of a management GET-LOG operation.
type logRequest struct {
	CorrelationID string `json:"correlationId"`
	Limit         int    `json:"limit,omitempty"`
}

// queryResponse is the shape of a QUERY result: one name list and one
// value row per entity.
type queryResponse struct {
	AttributeNames []string `json:"attributeNames"`
	Results        [][]any  `json:"results"`
}

type logResponse struct {
	Results [][]any `json:"results"`
}

func newQueryRequest(entityType string, attributeNames []string, limit int) queryRequest {
	if limit < 0 {
		limit = 0
	}
	return queryRequest{
		CorrelationID:  uuid.NewString(),
		EntityType:     entityType,
		AttributeNames: attributeNames,
		Count:          limit,
	}
}

func newLogRequest(limit int) logRequest {
	if limit < 0 {
		limit = 0
	}
	return logRequest{
		CorrelationID: uuid.NewString(),
		Limit:         limit,
	}
}

// decodeQueryResponse zips each result row with the attribute names.
// Cells beyond the end of a short row are left unset.
func decodeQueryResponse(data []byte) ([]Entity, error) {
	var resp queryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}

	entities := make([]Entity, 0, len(resp.Results))
	for _, row := range resp.Results {
		attrs := make(map[string]any, len(resp.AttributeNames))
		for i, name := range resp.AttributeNames {
			if i < len(row) {
				attrs[name] = row[i]
			}
		}
		entities = append(entities, Entity{attrs: attrs})
	}
	return entities, nil
}

func decodeLogResponse(data []byte) ([]LogRecord, error) {
	var resp logResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode log response: %w", err)
	}

	records := make([]LogRecord, len(resp.Results))
	for i, row := range resp.Results {
		records[i] = LogRecord(row)
	}
	return records, nil
}
