package qdrant

import "context"

// IQdrant defines the operations used against a Qdrant vector database.
type IQdrant interface {
	CreateCollection(ctx context.Context, req CreateCollectionRequest) error
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error)
}

var _ IQdrant = (*Client)(nil)
