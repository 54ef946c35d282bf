package management

import (
	"context"
	"fmt"
	"strings"
	"time"

	"routerstat/pkg/logging"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names exposed by a management gateway.
const (
	QueryToolName  = "management_query"
	GetLogToolName = "management_get_log"
)

// clientVersion is reported in the MCP initialize handshake.
const clientVersion = "1.0.0"

// MCPClient reaches the management agent through an MCP management gateway.
type MCPClient struct {
	endpoint  string
	transport TransportType
	client    client.MCPClient
	timeout   time.Duration
}

// NewMCPClient connects to the gateway at opts.Endpoint and performs the
// initialize handshake.
func NewMCPClient(ctx context.Context, opts Options) (*MCPClient, error) {
	mcpClient, err := createAndStartClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return newMCPClient(ctx, mcpClient, opts)
}

// newMCPClient wraps an already started MCP client.
func newMCPClient(ctx context.Context, mcpClient client.MCPClient, opts Options) (*MCPClient, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &MCPClient{
		endpoint:  opts.Endpoint,
		transport: opts.Transport,
		client:    mcpClient,
		timeout:   timeout,
	}

	if err := c.initialize(ctx); err != nil {
		_ = mcpClient.Close()
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return c, nil
}

// createAndStartClient creates and starts an MCP client for the transport.
// The HTTP client carries the same timeout and TLS settings as the HTTP
// bridge transport.
func createAndStartClient(ctx context.Context, opts Options) (*client.Client, error) {
	httpClient, err := newHTTPTransportClient(opts)
	if err != nil {
		return nil, err
	}

	var mcpClient *client.Client
	switch opts.Transport {
	case TransportSSE:
		mcpClient, err = client.NewSSEMCPClient(opts.Endpoint, transport.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("failed to create SSE client: %w", err)
		}
	case TransportStreamableHTTP:
		mcpClient, err = client.NewStreamableHttpClient(opts.Endpoint, transport.WithHTTPBasicClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("failed to create streamable-http client: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported transport type: %s", opts.Transport)
	}

	if err := mcpClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start %s client: %w", opts.Transport, err)
	}
	return mcpClient, nil
}

// initialize performs the MCP protocol handshake.
func (c *MCPClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "routerstat",
		Version: clientVersion,
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Initialize(timeoutCtx, req)
	if err != nil {
		logging.Debug("MCPClient", "initialize against %s failed: %v", c.endpoint, err)
		return err
	}
	logging.Debug("MCPClient", "connected to %s %s", result.ServerInfo.Name, result.ServerInfo.Version)
	return nil
}

// Query implements Client.
func (c *MCPClient) Query(ctx context.Context, entityType string, attributeNames []string, limit int) ([]Entity, error) {
	req := newQueryRequest(entityType, attributeNames, limit)
	logging.Debug("MCPClient", "QUERY %s count=%d correlationId=%s", entityType, req.Count, req.CorrelationID)

	args := map[string]interface{}{
		"correlationId": req.CorrelationID,
		"entityType":    req.EntityType,
	}
	if len(req.AttributeNames) > 0 {
		args["attributeNames"] = req.AttributeNames
	}
	if req.Count > 0 {
		args["count"] = req.Count
	}

	text, err := c.callTool(ctx, QueryToolName, args)
	if err != nil {
		return nil, c.wrapToolError(err, "QUERY", entityType)
	}
	return decodeQueryResponse([]byte(text))
}

// GetLog implements Client.
func (c *MCPClient) GetLog(ctx context.Context, limit int) ([]LogRecord, error) {
	req := newLogRequest(limit)
	logging.Debug("MCPClient", "GET-LOG limit=%d correlationId=%s", req.Limit, req.CorrelationID)

	args := map[string]interface{}{
		"correlationId": req.CorrelationID,
	}
	if req.Limit > 0 {
		args["limit"] = req.Limit
	}

	text, err := c.callTool(ctx, GetLogToolName, args)
	if err != nil {
		return nil, c.wrapToolError(err, "GET-LOG", "")
	}
	return decodeLogResponse([]byte(text))
}

// Close implements Client.
func (c *MCPClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// toolError is a tool result flagged with isError.
type toolError struct {
	message string
}

func (e *toolError) Error() string {
	return e.message
}

func (c *MCPClient) wrapToolError(err error, operation, entityType string) error {
	if te, ok := err.(*toolError); ok {
		return &QueryError{
			Operation:   operation,
			EntityType:  entityType,
			Description: te.message,
		}
	}
	return err
}

// callTool executes a tool and returns its first text content.
func (c *MCPClient) callTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return "", fmt.Errorf("tool call failed: %w", err)
	}

	var texts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			texts = append(texts, textContent.Text)
		}
	}

	if result.IsError {
		return "", &toolError{message: strings.Join(texts, "\n")}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("tool %s returned no text content", name)
	}
	return texts[0], nil
}
