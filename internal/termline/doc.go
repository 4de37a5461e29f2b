// Package termline renders run progress as a single overwritten terminal
// status line, with a plain-log fallback when stdout is not a TTY.
//
// Rendering is presentation only: the exact line format is not part of
// any contract, and every call is O(1) and non-blocking so the
// coordinator's event loop never stalls on the terminal.
package termline
