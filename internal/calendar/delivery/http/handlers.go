package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/calendar"
)

// appReturnPath is the fixed application route both OAuth endpoints redirect
// back to.
const appReturnPath = "/dashboard"

// CreatePending godoc
// @Summary     Store a confirmed study plan
// @Description Stores the plan and returns the correlation token used as the OAuth state value.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createPendingReq true "Plan events"
// @Success     200 {object} map[string]string "pendingId"
// @Failure     400 {object} map[string]string "error"
// @Router      /api/v1/calendar/pending [POST]
func (h *handler) CreatePending(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreatePendingReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.uc.CreatePending(ctx, req.toEvents())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreatePending: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not store plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pendingId": token})
}

// Authorize godoc
// @Summary     Redirect to the calendar provider's consent screen
// @Description Always responds with a redirect; never JSON. A broken OAuth configuration redirects back into the application with an error indicator.
// @Tags        Calendar
// @Param       state query string false "Correlation token"
// @Success     302
// @Router      /api/v1/calendar/auth [GET]
func (h *handler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()

	authURL, err := h.uc.AuthCodeURL(ctx, c.Query("state"))
	if err != nil {
		c.Redirect(http.StatusFound, h.appReturnURL(calendar.CallbackResult{Outcome: calendar.OutcomeError}))
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code, creates the pending events, and redirects back into the application with a result summary. Always a redirect.
// @Tags        Calendar
// @Param       code  query string false "Authorization code"
// @Param       state query string false "Correlation token"
// @Param       error query string false "Provider error"
// @Success     302
// @Router      /api/v1/calendar/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	result := h.uc.HandleCallback(ctx, calendar.CallbackInput{
		Code:             c.Query("code"),
		State:            c.Query("state"),
		Error:            c.Query("error"),
		ErrorDescription: c.Query("error_description"),
	})

	c.Redirect(http.StatusFound, h.appReturnURL(result))
}

// appReturnURL encodes the outcome into the application return redirect.
// Exactly one calendar value is appended per the outcome table.
func (h *handler) appReturnURL(result calendar.CallbackResult) string {
	params := url.Values{}
	params.Set("calendar", string(result.Outcome))

	switch result.Outcome {
	case calendar.OutcomeSuccess:
		params.Set("count", fmt.Sprintf("%d", result.Count))
	case calendar.OutcomeDenied:
		params.Set("error", result.Reason)
	}

	return h.appBaseURL + appReturnPath + "?" + params.Encode()
}
