// Package dispatch routes named tool calls to their bound handlers and
// normalises every outcome into a uniform result or typed error.
//
// Invariants:
//   - every call resolves to exactly one result or exactly one error, never both
//   - an unknown tool name fails before any handler runs
//   - a handler's underlying error is wrapped and surfaced, never swallowed
//
// Flow:
//
//	caller -> lookup -> required-argument check -> handler -> envelope
package dispatch
