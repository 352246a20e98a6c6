package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/model"
)

type respondReq struct {
	Messages []model.ChatMessage `json:"messages"`
}

type respondResp struct {
	Message string                  `json:"message"`
	Flow    model.Flow              `json:"flow"`
	Events  []model.EventDescriptor `json:"events,omitempty"`
}

func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errors.New("invalid request body")
	}
	if len(req.Messages) == 0 {
		return req, errors.New("messages must be a non-empty array")
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case model.RoleUser, model.RoleAssistant, model.RoleSystem:
		default:
			return req, errors.New("message role must be user, assistant or system")
		}
	}
	return req, nil
}
