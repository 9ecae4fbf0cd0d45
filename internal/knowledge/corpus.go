package knowledge

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Document is one Q&A entry rendered into an embeddable text.
type Document struct {
	QType string
	Text  string
}

// LoadCorpus reads the Q&A corpus from a CSV file on disk.
func LoadCorpus(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return ParseCorpus(f)
}

// ParseCorpus reads CSV rows with columns q_type, question, and answer and
// renders each row into a single retrievable document. Rows with an empty
// question or answer are skipped.
func ParseCorpus(r io.Reader) ([]Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		qType := field(record, idx[ColumnQType])
		question := field(record, idx[ColumnQuestion])
		answer := field(record, idx[ColumnAnswer])
		if question == "" || answer == "" {
			continue
		}

		docs = append(docs, Document{
			QType: qType,
			Text:  fmt.Sprintf("%s: %s - %s", qType, question, answer),
		})
	}

	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	return docs, nil
}

// columnIndex maps the required columns to their positions, reporting every
// missing column at once.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, col := range []string{ColumnQType, ColumnQuestion, ColumnAnswer} {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Missing: missing}
	}

	return idx, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// chunkText splits text into overlapping windows. Text shorter than the
// window is returned as-is.
func chunkText(text string, size, overlap int) []string {
	if size <= 0 || len(text) <= size {
		return []string{text}
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + size
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}
