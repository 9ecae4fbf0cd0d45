package classifier

import (
	"clinic-assistant/pkg/llmprovider"
	"clinic-assistant/pkg/log"
)

// Classifier maps a conversation onto a route label using the LLM.
type Classifier struct {
	llm    *llmprovider.Manager
	l      log.Logger
	window int
}

// New creates a new Classifier. window is how many trailing turns the
// classification decision may look at.
func New(llm *llmprovider.Manager, l log.Logger, window int) *Classifier {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &Classifier{
		llm:    llm,
		l:      l,
		window: window,
	}
}
