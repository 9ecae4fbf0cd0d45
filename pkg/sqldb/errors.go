package sqldb

import "fmt"

// QueryError is a syntax or execution fault, distinguishable from an empty
// result set.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
