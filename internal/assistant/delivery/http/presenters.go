package http

import "clinic-assistant/internal/assistant"

type askReq struct {
	Question string `json:"question" binding:"required"`
	ThreadID string `json:"thread_id"`
}

func (r askReq) toInput() assistant.AskInput {
	return assistant.AskInput{Question: r.Question}
}

type askResp struct {
	Response string `json:"response"`
}

func (h *handler) newAskResp(o assistant.AskOutput) askResp {
	return askResp{Response: o.Response}
}
