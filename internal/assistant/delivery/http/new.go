package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
	Visualize(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
