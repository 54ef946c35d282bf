// Package report builds the routerstat diagnostic reports.
//
// Each report kind has one builder. A builder declares its headers and the
// attribute names it needs, issues exactly one management query (or GetLog
// for the log listing), maps every returned entity to a row and optionally
// sorts the rows. The Dispatcher maps a Selector to its builder and hands
// the result to a Renderer.
//
// Builders never fetch more than the row limit: the limit is passed to the
// query, not applied afterwards. The general and memory reports are the
// only unbounded queries.
//
// Two reports can end without a table. A nodes query with no rows means the
// router runs standalone, and a memory query with no rows means the router
// was built without memory pooling; both produce a terminal line instead.
package report
