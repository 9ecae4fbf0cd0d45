package knowledge

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clinic-assistant/pkg/qdrant"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// fakeEmbedder returns deterministic vectors, one per input text.
type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i]))}
	}
	return out, nil
}

// fakeStore is an in-memory stand-in for a Qdrant collection.
type fakeStore struct {
	exists    bool
	created   int
	upserted  []qdrant.Point
	results   []qdrant.ScoredPoint
	searchErr error
}

func (f *fakeStore) CreateCollection(ctx context.Context, req qdrant.CreateCollectionRequest) error {
	f.created++
	f.exists = true
	return nil
}

func (f *fakeStore) CollectionExists(ctx context.Context, collectionName string) (bool, error) {
	return f.exists, nil
}

func (f *fakeStore) UpsertPoints(ctx context.Context, collectionName string, req qdrant.UpsertPointsRequest) error {
	f.upserted = append(f.upserted, req.Points...)
	return nil
}

func (f *fakeStore) SearchPoints(ctx context.Context, collectionName string, req qdrant.SearchRequest) (*qdrant.SearchResponse, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	limit := req.Limit
	if limit > len(f.results) {
		limit = len(f.results)
	}
	return &qdrant.SearchResponse{Result: f.results[:limit]}, nil
}

func TestIndexBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Missing Collection And Upserts", func(t *testing.T) {
		store := &fakeStore{}
		ix := NewIndex(store, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		docs := []Document{
			{QType: "general", Text: "general: opening hours - 8am to 6pm"},
			{QType: "billing", Text: "billing: insurance - most plans accepted"},
		}
		if err := ix.Build(ctx, docs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.created != 1 {
			t.Errorf("expected collection created once, got %d", store.created)
		}
		if len(store.upserted) != 2 {
			t.Fatalf("expected 2 points, got %d", len(store.upserted))
		}
		if store.upserted[0].Payload[PayloadKeyText] != docs[0].Text {
			t.Errorf("unexpected payload text: %v", store.upserted[0].Payload[PayloadKeyText])
		}
		if store.upserted[1].Payload[PayloadKeyQType] != "billing" {
			t.Errorf("unexpected payload q_type: %v", store.upserted[1].Payload[PayloadKeyQType])
		}
	})

	t.Run("Existing Collection Is Not Recreated", func(t *testing.T) {
		store := &fakeStore{exists: true}
		ix := NewIndex(store, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		err := ix.Build(ctx, []Document{{QType: "general", Text: "general: q - a"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.created != 0 {
			t.Errorf("expected no collection creation, got %d", store.created)
		}
	})

	t.Run("Large Corpus Is Embedded In Batches", func(t *testing.T) {
		store := &fakeStore{exists: true}
		emb := &fakeEmbedder{}
		ix := NewIndex(store, emb, "test_collection", 1, &mockLogger{})

		docs := make([]Document, EmbedBatchSize+5)
		for i := range docs {
			docs[i] = Document{QType: "general", Text: fmt.Sprintf("general: q%d - a%d", i, i)}
		}
		if err := ix.Build(ctx, docs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if emb.calls != 2 {
			t.Errorf("expected 2 embed batches, got %d", emb.calls)
		}
		if len(store.upserted) != len(docs) {
			t.Errorf("expected %d points, got %d", len(docs), len(store.upserted))
		}
	})

	t.Run("Embedder Failure Aborts Build", func(t *testing.T) {
		store := &fakeStore{exists: true}
		ix := NewIndex(store, &fakeEmbedder{err: errors.New("quota exceeded")}, "test_collection", 1, &mockLogger{})

		err := ix.Build(ctx, []Document{{QType: "general", Text: "general: q - a"}})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(store.upserted) != 0 {
			t.Errorf("expected no points upserted, got %d", len(store.upserted))
		}
	})

	t.Run("Empty Corpus Is Rejected", func(t *testing.T) {
		ix := NewIndex(&fakeStore{}, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})
		if err := ix.Build(ctx, nil); !errors.Is(err, ErrEmptyCorpus) {
			t.Errorf("expected ErrEmptyCorpus, got %v", err)
		}
	})
}

func TestIndexSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Payload Texts In Rank Order", func(t *testing.T) {
		store := &fakeStore{
			exists: true,
			results: []qdrant.ScoredPoint{
				{Score: 0.95, Payload: map[string]interface{}{PayloadKeyText: "first passage"}},
				{Score: 0.80, Payload: map[string]interface{}{PayloadKeyText: "second passage"}},
			},
		}
		ix := NewIndex(store, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		passages, err := ix.Search(ctx, "opening hours", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(passages) != 2 || passages[0] != "first passage" || passages[1] != "second passage" {
			t.Errorf("unexpected passages: %v", passages)
		}
	})

	t.Run("Missing Collection Is Unavailable", func(t *testing.T) {
		ix := NewIndex(&fakeStore{exists: false}, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		_, err := ix.Search(ctx, "opening hours", 5)
		if !errors.Is(err, ErrIndexUnavailable) {
			t.Errorf("expected ErrIndexUnavailable, got %v", err)
		}
	})

	t.Run("Search Fault Is Unavailable", func(t *testing.T) {
		store := &fakeStore{exists: true, searchErr: errors.New("connection refused")}
		ix := NewIndex(store, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		_, err := ix.Search(ctx, "opening hours", 5)
		if !errors.Is(err, ErrIndexUnavailable) {
			t.Errorf("expected ErrIndexUnavailable, got %v", err)
		}
	})

	t.Run("Points Without Text Payload Are Dropped", func(t *testing.T) {
		store := &fakeStore{
			exists: true,
			results: []qdrant.ScoredPoint{
				{Score: 0.9, Payload: map[string]interface{}{PayloadKeyText: "kept"}},
				{Score: 0.8, Payload: map[string]interface{}{}},
			},
		}
		ix := NewIndex(store, &fakeEmbedder{}, "test_collection", 1, &mockLogger{})

		passages, err := ix.Search(ctx, "q", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(passages) != 1 || passages[0] != "kept" {
			t.Errorf("unexpected passages: %v", passages)
		}
	})
}
