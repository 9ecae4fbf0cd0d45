package usecase

import (
	"context"
	"strings"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
)

// Ask runs the question through the workflow. Internal failures are logged
// and converted into a fixed apology so the caller always gets a reply.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, ip assistant.AskInput) (assistant.AskOutput, error) {
	question := strings.TrimSpace(ip.Question)
	if question == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuestion
	}

	threadID := sc.ThreadID
	if threadID == "" {
		threadID = DefaultThreadID
	}

	answer, err := uc.engine.Run(ctx, threadID, question)
	if err != nil {
		uc.l.Errorf(ctx, "%s: workflow failed: %v", LogPrefixAsk, err)
		return assistant.AskOutput{Response: MessageApology}, nil
	}

	return assistant.AskOutput{Response: answer}, nil
}

// Visualize renders the workflow topology.
func (uc *implUseCase) Visualize(ctx context.Context) (string, error) {
	return uc.engine.Mermaid(), nil
}
