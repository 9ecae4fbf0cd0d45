package knowledge

import "context"

// Retriever finds corpus passages relevant to a query.
type Retriever interface {
	// Search returns up to topK passages ranked by similarity. It returns
	// ErrIndexUnavailable when the underlying collection does not exist.
	Search(ctx context.Context, query string, topK int) ([]string, error)
}
