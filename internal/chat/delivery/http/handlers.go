package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/chat"
	pkgResponse "examprep-backend/pkg/response"
)

// Respond godoc
// @Summary     Answer a chat transcript
// @Description Classifies the transcript, forwards it to the completion service, and returns the reply with any embedded study plan extracted into events.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "Chat transcript"
// @Success     200 {object} respondResp
// @Failure     400 {object} response.Resp
// @Failure     502 {object} response.Resp
// @Router      /api/v1/chat [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRespondReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.uc.Respond(ctx, chat.RespondInput{Messages: req.Messages})
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		if errors.Is(err, chat.ErrUpstream) {
			pkgResponse.BadGateway(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, respondResp{
		Message: out.Message,
		Flow:    out.Flow,
		Events:  out.Events,
	})
}
