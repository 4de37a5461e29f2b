package search

import "errors"

var (
	// ErrNegativeWorkerCount is returned when Run is asked to spawn a
	// negative number of workers. Zero is allowed: the run idles at zero
	// throughput until cancelled.
	ErrNegativeWorkerCount = errors.New("worker count must not be negative")

	// ErrRunConsumed is returned when Run is called twice on the same
	// Coordinator. A Coordinator carries one run's state and is not
	// reusable.
	ErrRunConsumed = errors.New("coordinator already ran")
)
