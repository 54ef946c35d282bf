package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ConnectionErrorType says why the router could not be reached.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates the router's certificate was rejected.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates the router refused or dropped the connection.
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates the router did not answer in time.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates the router host name did not resolve.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return "Connection error"
	}
}

// hint suggests the flag most likely to fix the failure.
func (t ConnectionErrorType) hint() string {
	switch t {
	case ConnectionErrorTLS:
		return "Check --tls-ca-cert, or use --tls-insecure for self-signed test routers."
	case ConnectionErrorTimeout:
		return "The router may be overloaded; raise --timeout or lower --limit."
	case ConnectionErrorDNS, ConnectionErrorNetwork:
		return "Check --endpoint and that the router's management listener is up."
	default:
		return ""
	}
}

// ConnectionError indicates the management endpoint could not be reached.
type ConnectionError struct {
	// Endpoint is the URL that could not be reached.
	Endpoint string
	Type     ConnectionErrorType
	Err      error
}

func (e *ConnectionError) Error() string {
	msg := fmt.Sprintf("%s: cannot reach %s: %v", e.Type, e.Endpoint, e.Err)
	if hint := e.Type.hint(); hint != "" {
		msg += "\n\n" + hint
	}
	return msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ClassifyConnectionError wraps err in a ConnectionError typed by its
// cause. A nil err yields nil.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}
	return &ConnectionError{Endpoint: endpoint, Type: classify(err), Err: err}
}

// classifiers are tried in order; TLS failures often also mention the
// dialled address, so they go first.
var classifiers = []struct {
	kind  ConnectionErrorType
	match func(error) bool
}{
	{ConnectionErrorTLS, isTLSError},
	{ConnectionErrorDNS, isDNSError},
	{ConnectionErrorTimeout, isTimeoutError},
	{ConnectionErrorNetwork, isNetworkError},
}

func classify(err error) ConnectionErrorType {
	for _, c := range classifiers {
		if c.match(err) {
			return c.kind
		}
	}
	return ConnectionErrorUnknown
}

var (
	tlsKeywords     = []string{"x509:", "certificate", "tls:", "TLS handshake"}
	timeoutKeywords = []string{"timeout", "deadline exceeded"}
	networkKeywords = []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}
)

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func isTLSError(err error) bool {
	var certErr x509.CertificateInvalidError
	var hostErr x509.HostnameError
	var authorityErr x509.UnknownAuthorityError
	var rootsErr x509.SystemRootsError
	if errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		errors.As(err, &authorityErr) || errors.As(err, &rootsErr) {
		return true
	}
	return containsAny(err.Error(), tlsKeywords)
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return containsAny(err.Error(), timeoutKeywords)
}

func isNetworkError(err error) bool {
	return containsAny(err.Error(), networkKeywords)
}

// SelectorError reports that no report, or more than one, was selected.
type SelectorError struct {
	// Selected lists the selector flags that were set.
	Selected []string
}

func (e *SelectorError) Error() string {
	if len(e.Selected) == 0 {
		return "no report selected: choose one of -g, -c, -l, -n, -a, -m, --autolinks, --linkroutes, --log (or --report <name>)"
	}
	return fmt.Sprintf("only one report may be selected, got %s", strings.Join(e.Selected, ", "))
}
