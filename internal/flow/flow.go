// Package flow classifies a chat transcript into the downstream behavior it
// should trigger. Classification is pure keyword matching: it has no
// dependencies, never fails, and defaults to FlowNone.
package flow

import (
	"strings"

	"examprep-backend/internal/model"
)

// Result carries both independent signals. Both may be set for a single
// transcript; the caller decides priority.
type Result struct {
	Scheduling  bool
	VideoAssist bool
}

// Detect scans the transcript and reports which intents fire.
//
// Video intent is evaluated on the latest user turn only; scheduling intent on
// any turn in the visible history, because the assistant asks clarifying
// questions across several turns before a plan appears.
func Detect(history []model.ChatMessage) Result {
	var res Result

	if latest, ok := latestUserTurn(history); ok {
		res.VideoAssist = matchesAny(latest.Content, videoKeywords)
	}

	for _, msg := range history {
		if matchesAny(msg.Content, schedulingKeywords) {
			res.Scheduling = true
			break
		}
	}

	return res
}

// Classify applies the reference priority: when a single turn fires both
// signals, video-assist wins.
func Classify(history []model.ChatMessage) model.Flow {
	res := Detect(history)
	switch {
	case res.VideoAssist:
		return model.FlowVideoAssist
	case res.Scheduling:
		return model.FlowScheduling
	default:
		return model.FlowNone
	}
}

func latestUserTurn(history []model.ChatMessage) (model.ChatMessage, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == model.RoleUser {
			return history[i], true
		}
	}
	return model.ChatMessage{}, false
}

func matchesAny(content string, keywords []string) bool {
	lowered := strings.ToLower(content)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
