package knowledge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/qdrant"
	"clinic-assistant/pkg/voyage"
)

// Index stores and retrieves embedded corpus passages in a Qdrant collection.
type Index struct {
	store      qdrant.IQdrant
	embedder   voyage.IVoyage
	collection string
	vectorSize int
	l          log.Logger
}

var _ Retriever = (*Index)(nil)

// NewIndex creates an Index over the given vector store and embedder.
func NewIndex(store qdrant.IQdrant, embedder voyage.IVoyage, collection string, vectorSize int, l log.Logger) *Index {
	if collection == "" {
		collection = DefaultCollectionName
	}
	if vectorSize <= 0 {
		vectorSize = DefaultVectorSize
	}
	return &Index{
		store:      store,
		embedder:   embedder,
		collection: collection,
		vectorSize: vectorSize,
		l:          l,
	}
}

// Build chunks, embeds, and upserts the corpus documents, creating the
// collection when it does not exist yet.
func (ix *Index) Build(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	if err := ix.ensureCollection(ctx); err != nil {
		return err
	}

	type chunk struct {
		qType string
		text  string
	}
	var chunks []chunk
	for _, doc := range docs {
		for _, part := range chunkText(doc.Text, ChunkSize, ChunkOverlap) {
			chunks = append(chunks, chunk{qType: doc.QType, text: part})
		}
	}

	for start := 0; start < len(chunks); start += EmbedBatchSize {
		end := start + EmbedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.text
		}

		vectors, err := ix.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch [%d:%d]: %w", start, end, err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embed batch [%d:%d]: got %d vectors for %d texts", start, end, len(vectors), len(batch))
		}

		points := make([]qdrant.Point, len(batch))
		for i, c := range batch {
			points[i] = qdrant.Point{
				ID:     uuid.NewString(),
				Vector: vectors[i],
				Payload: map[string]interface{}{
					PayloadKeyText:  c.text,
					PayloadKeyQType: c.qType,
				},
			}
		}

		if err := ix.store.UpsertPoints(ctx, ix.collection, qdrant.UpsertPointsRequest{Points: points}); err != nil {
			return fmt.Errorf("upsert batch [%d:%d]: %w", start, end, err)
		}
	}

	ix.l.Infof(ctx, "%s: indexed %d documents as %d chunks into collection %s",
		LogPrefixBuild, len(docs), len(chunks), ix.collection)
	return nil
}

// Search embeds the query and returns the payload texts of the nearest
// chunks.
func (ix *Index) Search(ctx context.Context, query string, topK int) ([]string, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	exists, err := ix.store.CollectionExists(ctx, ix.collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: collection %s not found", ErrIndexUnavailable, ix.collection)
	}

	vectors, err := ix.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed query: empty embedding response")
	}

	resp, err := ix.store.SearchPoints(ctx, ix.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       topK,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	passages := make([]string, 0, len(resp.Result))
	for _, pt := range resp.Result {
		if text, ok := pt.Payload[PayloadKeyText].(string); ok && text != "" {
			passages = append(passages, text)
		}
	}

	ix.l.Debugf(ctx, "%s: query matched %d passage(s)", LogPrefixSearch, len(passages))
	return passages, nil
}

func (ix *Index) ensureCollection(ctx context.Context) error {
	exists, err := ix.store.CollectionExists(ctx, ix.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = ix.store.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: ix.collection,
		Vectors: qdrant.VectorConfig{
			Size:     ix.vectorSize,
			Distance: DistanceMetric,
		},
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	ix.l.Infof(ctx, "%s: created collection %s (size=%d, distance=%s)",
		LogPrefixBuild, ix.collection, ix.vectorSize, DistanceMetric)
	return nil
}
