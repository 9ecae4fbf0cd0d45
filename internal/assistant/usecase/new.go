package usecase

import (
	"clinic-assistant/internal/assistant"
	"clinic-assistant/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	engine assistant.Engine
	l      log.Logger
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase implementation.
func New(engine assistant.Engine, l log.Logger) *implUseCase {
	return &implUseCase{
		engine: engine,
		l:      l,
	}
}
