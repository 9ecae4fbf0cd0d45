package advice

import (
	"context"
	"fmt"
	"strings"

	"clinic-assistant/internal/conversation"
	"clinic-assistant/internal/knowledge"
	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/llmprovider"
	"clinic-assistant/pkg/log"
)

// Responder answers medical questions, grounding them in the clinic
// knowledge base when the index is reachable.
type Responder struct {
	llm       *llmprovider.Manager
	retriever knowledge.Retriever
	l         log.Logger
	window    int
	topK      int
}

// New creates a Responder. retriever may be nil, in which case answers are
// generated without grounding.
func New(llm *llmprovider.Manager, retriever knowledge.Retriever, l log.Logger, window, topK int) *Responder {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if topK <= 0 {
		topK = DefaultRetrievalTopK
	}
	return &Responder{
		llm:       llm,
		retriever: retriever,
		l:         l,
		window:    window,
		topK:      topK,
	}
}

// Name identifies this node in the workflow graph.
func (r *Responder) Name() string { return "advice" }

// Run generates a medical advice reply to the latest user message and
// appends it to the conversation as a single assistant turn.
func (r *Responder) Run(ctx context.Context, st *conversation.State) (*conversation.Delta, error) {
	question, err := st.LastUserMessage(r.window)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixRespond, err)
	}

	system := PromptAdviceSystem
	if passages := r.retrieve(ctx, question); len(passages) > 0 {
		system = system + "\n\n" + PromptReferencePassages + "\n- " + strings.Join(passages, "\n- ")
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages:    historyMessages(st, r.window),
		Temperature: AdviceTemperature,
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixRespond, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return nil, fmt.Errorf("%s: %w", LogPrefixRespond, llmprovider.ErrEmptyResponse)
	}

	return &conversation.Delta{
		AppendTurns: []model.Turn{{Role: model.RoleAssistant, Content: answer}},
		Answer:      answer,
	}, nil
}

// retrieve is best-effort. An unreachable or missing index degrades to an
// ungrounded answer.
func (r *Responder) retrieve(ctx context.Context, question string) []string {
	if r.retriever == nil {
		return nil
	}

	passages, err := r.retriever.Search(ctx, question, r.topK)
	if err != nil {
		r.l.Warnf(ctx, "%s: retrieval skipped: %v", LogPrefixRespond, err)
		return nil
	}
	return passages
}

// historyMessages maps the most recent conversation turns to provider
// messages.
func historyMessages(st *conversation.State, window int) []llmprovider.Message {
	turns := st.Messages
	if window > 0 && len(turns) > window {
		turns = turns[len(turns)-window:]
	}

	msgs := make([]llmprovider.Message, 0, len(turns))
	for _, t := range turns {
		msgs = append(msgs, llmprovider.Message{
			Role:  string(t.Role),
			Parts: []llmprovider.Part{{Text: t.Content}},
		})
	}
	return msgs
}
