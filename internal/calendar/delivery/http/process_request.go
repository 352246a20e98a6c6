package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"examprep-backend/internal/model"
)

type eventReq struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
}

type createPendingReq struct {
	Events []eventReq `json:"events"`
}

// processCreatePendingReq binds and validates the plan-creation body. Every
// descriptor must carry title, date, startTime and endTime; range sanity is
// deliberately not checked here.
func (h *handler) processCreatePendingReq(c *gin.Context) (createPendingReq, error) {
	var req createPendingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errors.New("invalid request body")
	}
	if len(req.Events) == 0 {
		return req, errors.New("events must be a non-empty array")
	}
	for _, ev := range req.Events {
		if ev.Title == "" || ev.Date == "" || ev.StartTime == "" || ev.EndTime == "" {
			return req, errors.New("each event requires title, date, startTime and endTime")
		}
	}
	return req, nil
}

func (req createPendingReq) toEvents() []model.EventDescriptor {
	events := make([]model.EventDescriptor, 0, len(req.Events))
	for _, ev := range req.Events {
		events = append(events, model.EventDescriptor{
			Title:     ev.Title,
			Date:      ev.Date,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Subject:   ev.Subject,
		})
	}
	return events
}
