package dataquery

import (
	"context"
	"fmt"
	"strings"

	"clinic-assistant/internal/conversation"
	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/llmprovider"
	"clinic-assistant/pkg/log"
)

// Synthesizer turns an executed query and its result into a natural
// language answer.
type Synthesizer struct {
	llm    *llmprovider.Manager
	l      log.Logger
	window int
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(llm *llmprovider.Manager, l log.Logger, window int) *Synthesizer {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &Synthesizer{llm: llm, l: l, window: window}
}

// Name identifies this node in the workflow graph.
func (s *Synthesizer) Name() string { return "synthesize" }

// Run appends the answer for the query path as a single assistant turn.
// When the preceding node recorded an execution error, it answers with a
// fixed sentence without calling the model.
func (s *Synthesizer) Run(ctx context.Context, st *conversation.State) (*conversation.Delta, error) {
	if st.QueryError != "" {
		s.l.Warnf(ctx, "%s: answering around failed query: %s", LogPrefixSynthesize, st.QueryError)
		return &conversation.Delta{
			AppendTurns: []model.Turn{{Role: model.RoleAssistant, Content: MessageCouldNotFind}},
			Answer:      MessageCouldNotFind,
		}, nil
	}

	question, err := st.LastUserMessage(s.window)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixSynthesize, err)
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptSynthesizeSystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{
				{Text: fmt.Sprintf(PromptSynthesizeUser, question, st.SQLQuery, st.SQLResult)},
			}},
		},
		Temperature: SynthesizeTemperature,
	}

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixSynthesize, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return nil, fmt.Errorf("%s: %w", LogPrefixSynthesize, llmprovider.ErrEmptyResponse)
	}

	return &conversation.Delta{
		AppendTurns: []model.Turn{{Role: model.RoleAssistant, Content: answer}},
		Answer:      answer,
	}, nil
}
