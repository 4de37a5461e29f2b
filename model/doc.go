// Package model defines core types used throughout Longshot.
//
// # Identity Types
//
//   - Candidate: Fixed-size secret drawn from the oracle input domain
//   - PublicValue: Hex-encoded output of the one-way derivation
//   - Target: Immutable (secret, public) pair the run searches for
//
// # Messaging Types
//
//   - Report: Tagged union of worker-to-coordinator messages
//     (progress, found, fault)
//   - RunState: One-directional Running -> Stopping -> Stopped lifecycle
//   - StopCause: Why a run ended (match found or cancelled)
//
// Checked counts cross the message boundary as decimal strings so that
// long runs never lose precision to a native integer or float transfer.
package model
