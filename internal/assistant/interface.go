package assistant

import (
	"context"

	"clinic-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask answers one user question on the conversation thread in scope.
	Ask(ctx context.Context, sc model.Scope, ip AskInput) (AskOutput, error)

	// Visualize renders the workflow topology as a Mermaid diagram.
	Visualize(ctx context.Context) (string, error)
}

// Engine runs one conversation turn through the workflow graph.
type Engine interface {
	Run(ctx context.Context, threadID, question string) (string, error)
	Mermaid() string
}
