package conversation

import "context"

// Store persists conversation state keyed by thread id.
//
// Acquire serializes turns: the workflow holds the thread's lock for the
// whole load-run-save cycle, so two overlapping requests for the same
// thread id never race on one state. Distinct thread ids proceed in
// parallel.
type Store interface {
	// Load returns the state for a thread id, reporting whether one exists.
	Load(ctx context.Context, threadID string) (*State, bool, error)

	// Save stores the state for a thread id.
	Save(ctx context.Context, threadID string, st *State) error

	// Acquire locks the thread id and returns the release func.
	Acquire(threadID string) (release func())
}
