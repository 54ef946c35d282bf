// Package management talks to a router's management endpoint.
//
// The report engine only depends on the Client interface: one Query per
// report and one GetLog for the log listing. Two transports implement it:
//
//   - HTTPClient posts JSON documents that mirror the AMQP management
//     QUERY and GET-LOG operations to {endpoint}/query and {endpoint}/log.
//   - MCPClient calls the management_query and management_get_log tools of
//     a management gateway over streamable-http or SSE.
//
// Both return the same Entity and LogRecord values. An attribute missing
// from a result row, or present as null, is an unset Value rather than an
// error.
//
// Transports own connection timeouts. Nothing in this package retries.
package management
