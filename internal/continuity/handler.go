package continuity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"examprep-backend/pkg/log"
	pkgResponse "examprep-backend/pkg/response"
)

// Handler serves the snapshot slot to the web client.
type Handler struct {
	l    log.Logger
	slot *Slot
}

// NewHandler creates the continuity handler around a slot.
func NewHandler(l log.Logger, slot *Slot) *Handler {
	return &Handler{l: l, slot: slot}
}

// SaveSnapshot godoc
// @Summary     Save the conversation before the OAuth handoff
// @Description Stores the transcript in the single snapshot slot. Refused while a previous handoff is still in flight.
// @Tags        Continuity
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Failure     409 {object} map[string]string "handoff already in flight"
// @Router      /api/v1/continuity/snapshot [POST]
func (h *Handler) SaveSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.slot.Save(req.Messages); err != nil {
		h.l.Warnf(ctx, "snapshot refused: %v", err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.l.Infof(ctx, "conversation snapshot saved: %d messages", len(req.Messages))
	pkgResponse.OK(c, nil)
}

// Restore godoc
// @Summary     Restore the conversation after the OAuth round trip
// @Description Consumes the snapshot slot once and maps the callback result parameters to a banner. An empty slot still yields the banner.
// @Tags        Continuity
// @Produce     json
// @Param       calendar query string false "Callback outcome"
// @Param       count    query int    false "Created event count"
// @Param       error    query string false "Denial reason"
// @Success     200 {object} restoreResp
// @Router      /api/v1/continuity/restore [GET]
func (h *Handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	outcome := c.Query("calendar")
	if outcome == "" {
		// Plain page load: nothing to show, slot untouched.
		c.JSON(http.StatusOK, restoreResp{})
		return
	}

	count, _ := strconv.Atoi(c.Query("count"))
	banner := bannerFor(outcome, count, c.Query("error"))

	messages, restored := h.slot.TakeOnce()
	if !restored {
		h.l.Infof(ctx, "no snapshot to restore for %q result", outcome)
	}

	c.JSON(http.StatusOK, restoreResp{
		Banner:   banner,
		Messages: messages,
		Restored: restored,
	})
}
