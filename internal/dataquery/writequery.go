package dataquery

import (
	"context"
	"fmt"
	"strings"

	"clinic-assistant/internal/conversation"
	"clinic-assistant/pkg/llmprovider"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/sqldb"
)

// Writer generates a SQL query for the latest user question and executes it
// against the clinic database.
type Writer struct {
	llm    *llmprovider.Manager
	db     sqldb.ILookup
	l      log.Logger
	window int
}

// NewWriter creates a Writer over the given database lookup.
func NewWriter(llm *llmprovider.Manager, db sqldb.ILookup, l log.Logger, window int) *Writer {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &Writer{llm: llm, db: db, l: l, window: window}
}

// Name identifies this node in the workflow graph.
func (w *Writer) Name() string { return "write_query" }

// Run writes the query into state along with either its result or the
// execution error. A failed execution is recorded, not returned, so the
// turn can still resolve with a polite reply.
func (w *Writer) Run(ctx context.Context, st *conversation.State) (*conversation.Delta, error) {
	question, err := st.LastUserMessage(w.window)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixWriteQuery, err)
	}

	schema, err := w.db.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: read schema: %w", LogPrefixWriteQuery, err)
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(PromptWriteQuerySystem, schema)}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: question}}},
		},
		Temperature: WriteQueryTemperature,
	}

	resp, err := w.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixWriteQuery, err)
	}

	query := removeSQLBlock(resp.Text())
	if query == "" || strings.EqualFold(query, conversation.QueryNotAvailable) {
		w.l.Infof(ctx, "%s: question not answerable from schema", LogPrefixWriteQuery)
		return &conversation.Delta{
			SQLQuery:  conversation.QueryNotAvailable,
			SQLResult: conversation.NoDataAvailable,
		}, nil
	}

	result, err := w.db.Run(ctx, query)
	if err != nil {
		w.l.Warnf(ctx, "%s: execution failed: %v", LogPrefixWriteQuery, err)
		return &conversation.Delta{
			SQLQuery:   query,
			QueryError: err.Error(),
		}, nil
	}
	if result == "" {
		result = conversation.NoDataAvailable
	}

	return &conversation.Delta{
		SQLQuery:  query,
		SQLResult: result,
	}, nil
}

// removeSQLBlock strips the surrounding sql code fence from a model reply.
// The strip is exact: only text that both opens with the sql fence and
// closes with a fence is stripped. Anything else is returned unchanged
// apart from trimming, even when it carries some other fence.
func removeSQLBlock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < len(sqlFenceOpen)+len(fenceClose) {
		return s
	}
	if !strings.HasPrefix(s, sqlFenceOpen) || !strings.HasSuffix(s, fenceClose) {
		return s
	}
	return strings.TrimSpace(s[len(sqlFenceOpen) : len(s)-len(fenceClose)])
}
