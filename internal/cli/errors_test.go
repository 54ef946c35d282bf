package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routerstat/internal/management"
)

func TestClassifyConnectionError(t *testing.T) {
	const endpoint = "https://router.example.com:8672"

	tests := []struct {
		name string
		err  error
		want ConnectionErrorType
	}{
		{"unknown authority", fmt.Errorf("post: %w", x509.UnknownAuthorityError{}), ConnectionErrorTLS},
		{"tls message", errors.New("tls: handshake failure"), ConnectionErrorTLS},
		{"dns", &net.DNSError{Err: "no such host", Name: "router.example.com"}, ConnectionErrorDNS},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), ConnectionErrorTimeout},
		{"refused", errors.New("dial tcp 127.0.0.1:8672: connect: connection refused"), ConnectionErrorNetwork},
		{"other", errors.New("something odd"), ConnectionErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connErr := ClassifyConnectionError(tt.err, endpoint)
			require.NotNil(t, connErr)
			assert.Equal(t, tt.want, connErr.Type)
			assert.Equal(t, endpoint, connErr.Endpoint)
			assert.ErrorIs(t, connErr, tt.err)
			assert.Contains(t, connErr.Error(), endpoint)
		})
	}

	assert.Nil(t, ClassifyConnectionError(nil, endpoint))
}

func TestConnectionErrorTLSHint(t *testing.T) {
	err := ClassifyConnectionError(errors.New("x509: certificate signed by unknown authority"), "https://r")
	assert.Contains(t, err.Error(), "--tls-ca-cert")
	assert.Contains(t, err.Error(), ConnectionErrorTLS.String())
}

func TestSelectorError(t *testing.T) {
	none := &SelectorError{}
	assert.Contains(t, none.Error(), "no report selected")

	many := &SelectorError{Selected: []string{"-c", "-l"}}
	assert.Equal(t, "only one report may be selected, got -c, -l", many.Error())
}

func TestIsTransportError(t *testing.T) {
	assert.True(t, isTransportError(errors.New("dial tcp: connection refused")))
	assert.True(t, isTransportError(&net.DNSError{Err: "no such host"}))
	assert.False(t, isTransportError(&management.QueryError{Operation: "QUERY", StatusCode: 500, Description: "timeout in agent"}))
	assert.False(t, isTransportError(errors.New("unknown report")))
}
