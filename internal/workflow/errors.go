package workflow

import "errors"

var (
	// ErrInvalidGraph indicates the graph wiring is incomplete. It is
	// returned at construction time, never during a request.
	ErrInvalidGraph = errors.New("invalid workflow graph")

	// ErrStepLimit indicates a run walked more nodes than MaxSteps allows.
	ErrStepLimit = errors.New("workflow step limit exceeded")

	// ErrNoAnswer indicates a run finished without producing an answer.
	ErrNoAnswer = errors.New("workflow produced no answer")
)
