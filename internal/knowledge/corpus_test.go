package knowledge

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCorpus(t *testing.T) {
	t.Run("Renders Rows Into Documents", func(t *testing.T) {
		csv := "q_type,question,answer\n" +
			"general,What are your opening hours?,We are open 8am to 6pm.\n" +
			"billing,Do you accept insurance?,Yes. Most major plans are accepted.\n"

		docs, err := ParseCorpus(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("expected 2 documents, got %d", len(docs))
		}
		want := "general: What are your opening hours? - We are open 8am to 6pm."
		if docs[0].Text != want {
			t.Errorf("expected %q, got %q", want, docs[0].Text)
		}
		if docs[1].QType != "billing" {
			t.Errorf("expected q_type billing, got %q", docs[1].QType)
		}
	})

	t.Run("Missing Answer Column Is Reported", func(t *testing.T) {
		csv := "q_type,question\ngeneral,What are your opening hours?\n"

		_, err := ParseCorpus(strings.NewReader(csv))
		var missing *MissingColumnsError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingColumnsError, got %v", err)
		}
		if len(missing.Missing) != 1 || missing.Missing[0] != ColumnAnswer {
			t.Errorf("expected missing [answer], got %v", missing.Missing)
		}
	})

	t.Run("All Missing Columns Are Reported Together", func(t *testing.T) {
		csv := "id,text\n1,hello\n"

		_, err := ParseCorpus(strings.NewReader(csv))
		var missing *MissingColumnsError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingColumnsError, got %v", err)
		}
		if len(missing.Missing) != 3 {
			t.Errorf("expected 3 missing columns, got %v", missing.Missing)
		}
	})

	t.Run("Rows With Empty Question Or Answer Are Skipped", func(t *testing.T) {
		csv := "q_type,question,answer\n" +
			"general,,We are open 8am to 6pm.\n" +
			"general,What are your opening hours?,\n" +
			"general,Do you take walk-ins?,Yes.\n"

		docs, err := ParseCorpus(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected 1 document, got %d", len(docs))
		}
	})

	t.Run("Only Unusable Rows Is An Error", func(t *testing.T) {
		csv := "q_type,question,answer\ngeneral,,\n"

		_, err := ParseCorpus(strings.NewReader(csv))
		if !errors.Is(err, ErrEmptyCorpus) {
			t.Errorf("expected ErrEmptyCorpus, got %v", err)
		}
	})

	t.Run("Header Matching Is Case Insensitive", func(t *testing.T) {
		csv := "Q_Type,Question,Answer\ngeneral,Do you take walk-ins?,Yes.\n"

		docs, err := ParseCorpus(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected 1 document, got %d", len(docs))
		}
	})
}

func TestChunkText(t *testing.T) {
	t.Run("Short Text Is One Chunk", func(t *testing.T) {
		chunks := chunkText("short text", ChunkSize, ChunkOverlap)
		if len(chunks) != 1 || chunks[0] != "short text" {
			t.Errorf("expected single chunk, got %v", chunks)
		}
	})

	t.Run("Long Text Overlaps By Step", func(t *testing.T) {
		text := strings.Repeat("a", 250)
		chunks := chunkText(text, 100, 20)
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d", len(chunks))
		}
		if len(chunks[0]) != 100 || len(chunks[1]) != 100 {
			t.Errorf("expected full windows of 100, got %d and %d", len(chunks[0]), len(chunks[1]))
		}
		// windows start at 0, 80, 160 so the tail is 250-160=90 chars
		if len(chunks[2]) != 90 {
			t.Errorf("expected tail of 90, got %d", len(chunks[2]))
		}
	})

	t.Run("Chunks Reassemble To Original", func(t *testing.T) {
		text := strings.Repeat("abcde", 50)
		chunks := chunkText(text, 60, 10)
		var rebuilt strings.Builder
		for i, c := range chunks {
			if i == 0 {
				rebuilt.WriteString(c)
				continue
			}
			rebuilt.WriteString(c[10:])
		}
		if rebuilt.String() != text {
			t.Error("overlapping chunks do not reassemble to the original text")
		}
	})
}
