package assistant

import "errors"

var (
	ErrEmptyQuestion = errors.New("question is required")
)
