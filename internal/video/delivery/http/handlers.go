package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/video"
	pkgResponse "examprep-backend/pkg/response"
)

type searchReq struct {
	Query string `json:"query"`
}

type searchResp struct {
	Videos []video.Video `json:"videos"`
}

// Search godoc
// @Summary     Search study videos
// @Description Forwards the query to the hosted video-search API and returns normalized results.
// @Tags        Videos
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} map[string]string "error"
// @Failure     502 {object} response.Resp
// @Router      /api/v1/videos/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	videos, err := h.uc.Search(ctx, req.Query)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		if errors.Is(err, video.ErrUpstream) {
			pkgResponse.BadGateway(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, searchResp{Videos: videos})
}
