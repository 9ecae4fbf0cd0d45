package sqldb

import "context"

// ILookup defines the interface for the structured-data lookup capability.
// Implementations are safe for concurrent use.
type ILookup interface {
	// Schema returns a textual description of the tables the store holds.
	Schema(ctx context.Context) (string, error)

	// Run executes a query and renders the result as text. An empty result
	// is "" with nil error; an execution fault is a *QueryError.
	Run(ctx context.Context, query string) (string, error)
}
