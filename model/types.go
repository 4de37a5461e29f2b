package model

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// Candidate is a single input value to the derivation oracle: a 32-byte
// secret drawn uniformly from the candidate domain.
type Candidate [32]byte

// String returns the hex encoding of the candidate.
func (c Candidate) String() string {
	return hex.EncodeToString(c[:])
}

// PublicValue is the hex-encoded output of the one-way derivation.
type PublicValue string

// Target is the immutable pair the run searches for. It is generated once
// at process start and copied to every worker; nothing mutates it.
type Target struct {
	// SecretSeed is the secret the process picked for itself.
	SecretSeed Candidate

	// Public is Derive(SecretSeed). Workers only ever see this side.
	Public PublicValue
}

// String describes the target without revealing the secret.
func (t Target) String() string {
	return fmt.Sprintf("Target(%s)", t.Public)
}

// ReportType discriminates worker-to-coordinator messages.
type ReportType uint8

const (
	// ReportProgress carries a worker's cumulative checked count.
	ReportProgress ReportType = iota

	// ReportFound carries the recovered secret. A worker emits at most one
	// and never emits progress afterwards.
	ReportFound

	// ReportFault signals a worker error (e.g. entropy exhaustion). The
	// worker is done; the run continues without it.
	ReportFault
)

// String returns a human-readable report type name.
func (t ReportType) String() string {
	switch t {
	case ReportProgress:
		return "progress"
	case ReportFound:
		return "found"
	case ReportFault:
		return "fault"
	default:
		return fmt.Sprintf("ReportType(%d)", uint8(t))
	}
}

// Report is a single message from a worker to the coordinator.
//
// Checked is serialized as a decimal string: cumulative counts on long
// runs exceed what a float (or a 53-bit-safe integer) can carry across a
// message boundary without loss.
type Report struct {
	Type     ReportType
	WorkerID int

	// Checked is the worker's cumulative checked count since start,
	// in decimal. Set for progress and found reports.
	Checked string

	// Secret is the recovered candidate. Set only for found reports.
	Secret Candidate

	// Err is the worker's terminal error. Set only for fault reports.
	Err error
}

// CheckedInt parses the decimal checked count. Reports built by workers
// always carry a valid decimal; ok is false for anything else.
func (r Report) CheckedInt() (*big.Int, bool) {
	return new(big.Int).SetString(r.Checked, 10)
}

// RunState tracks the coordinator lifecycle. Transitions are
// one-directional: Running -> Stopping -> Stopped.
type RunState uint8

const (
	// RunStateRunning means workers are active and reports are processed.
	RunStateRunning RunState = iota

	// RunStateStopping means stopAll has fired; arriving reports are
	// discarded while workers tear down.
	RunStateStopping

	// RunStateStopped means teardown finished and the summary was emitted.
	RunStateStopped
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case RunStateRunning:
		return "running"
	case RunStateStopping:
		return "stopping"
	case RunStateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("RunState(%d)", uint8(s))
	}
}

// StopCause records why a run ended.
type StopCause uint8

const (
	// StopCauseFound means a worker recovered the secret.
	StopCauseFound StopCause = iota

	// StopCauseCancelled means an external interrupt (or parent context
	// cancellation) ended the run. This is a successful outcome, not an
	// error: "not found" is the expected result given the space size.
	StopCauseCancelled
)

// String returns a human-readable cause name.
func (c StopCause) String() string {
	switch c {
	case StopCauseFound:
		return "found"
	case StopCauseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("StopCause(%d)", uint8(c))
	}
}
