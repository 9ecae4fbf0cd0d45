package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/assistant"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "assistant.http.processAskReq: %v", err)
		return askReq{}, assistant.ErrEmptyQuestion
	}
	return req, nil
}
