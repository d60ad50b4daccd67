// Package observability records what happens to the task list as structured
// JSON Lines events and derives usage metrics from them on demand. The log is
// append-only and is never replayed into the task list.
package observability
