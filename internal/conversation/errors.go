package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrNoUserMessage = errors.New("no user message in recent history")
)
