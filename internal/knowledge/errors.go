package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexUnavailable indicates the vector collection does not exist or
	// cannot be reached. Callers may degrade to ungrounded answers.
	ErrIndexUnavailable = errors.New("knowledge index unavailable")

	// ErrEmptyCorpus indicates the source file contained no usable rows.
	ErrEmptyCorpus = errors.New("corpus contains no usable rows")
)

// MissingColumnsError reports the required CSV columns absent from the header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("csv header missing required column(s): %s", strings.Join(e.Missing, ", "))
}
