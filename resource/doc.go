// Package resource provides global resource management for Longshot runs:
// worker concurrency gating and terminal redraw budgeting.
package resource
