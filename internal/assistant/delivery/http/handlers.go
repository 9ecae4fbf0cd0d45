package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask the clinic assistant
// @Description Answers a medical or clinic-data question. The optional thread_id continues an existing conversation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ask(ctx, model.Scope{ThreadID: req.ThreadID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, h.newAskResp(output))
}

// Visualize godoc
// @Summary     Workflow diagram
// @Description Returns the conversation workflow as a Mermaid flowchart.
// @Tags        Assistant
// @Produce     plain
// @Success     200 {string} string "Mermaid diagram"
// @Router      /visualize [GET]
func (h *handler) Visualize(c *gin.Context) {
	ctx := c.Request.Context()

	diagram, err := h.uc.Visualize(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Visualize: %v", err)
		response.InternalError(c)
		return
	}

	c.String(http.StatusOK, diagram)
}
