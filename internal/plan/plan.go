// Package plan extracts a machine-readable study plan embedded in free-form
// assistant text. Extraction is pure and total: any malformed or truncated
// payload yields "no plan" rather than an error, because the chat reply must
// always render.
package plan

import (
	"encoding/json"
	"regexp"
	"strings"

	"examprep-backend/internal/model"
)

const planKey = `"studyPlan"`

// unfencedMarker is where a plan object starts when the model skipped (or was
// truncated before) the closing fence.
const unfencedMarker = `{"studyPlan":`

var (
	// ```json ... ``` or bare ``` ... ``` blocks, tag optional.
	fenceRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \t]*\n?(.*?)```")

	// Dangling partial-JSON tail left behind when generation was cut mid-array.
	fragmentRe = regexp.MustCompile(`(?s)\}\s*,\s*\{\s*"title".*$`)

	// Three or more consecutive line breaks collapse to one blank line.
	blankRunRe = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
)

type planEnvelope struct {
	StudyPlan []model.EventDescriptor `json:"studyPlan"`
}

// Extract returns the assistant text with the machine block removed, plus the
// events it carried. events is nil when no valid plan was found; the display
// text still has any recognizable plan fragment stripped so broken machine
// output never reaches the user.
func Extract(text string) (string, []model.EventDescriptor) {
	stripped, payload, found := locate(text)
	if !found {
		return text, nil
	}

	display := normalize(stripped)
	events := parse(payload)
	return display, events
}

// locate finds the machine block, returning the text without it and the raw
// candidate payload. Fenced blocks are tried first; an unfenced occurrence of
// the plan key is treated as running to the end of the text, which covers
// generation truncation that drops the closing fence.
func locate(text string) (stripped, payload string, found bool) {
	for _, m := range fenceRe.FindAllStringSubmatchIndex(text, -1) {
		inner := text[m[2]:m[3]]
		if !strings.Contains(inner, planKey) {
			continue
		}
		return text[:m[0]] + text[m[1]:], strings.TrimSpace(inner), true
	}

	if idx := strings.Index(text, unfencedMarker); idx != -1 {
		head := text[:idx]
		// Drop a dangling opening fence left right before the payload.
		if fence := strings.LastIndex(head, "```"); fence != -1 && strings.TrimSpace(head[fence+3:]) == "" {
			head = head[:fence]
		} else if fence := strings.LastIndex(head, "```json"); fence != -1 && strings.TrimSpace(head[fence+7:]) == "" {
			head = head[:fence]
		}
		return head, text[idx:], true
	}

	return "", "", false
}

// parse validates the candidate payload: it must decode, carry a non-empty
// array, and every element must have at least a title and a date.
func parse(payload string) []model.EventDescriptor {
	var env planEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil
	}
	if len(env.StudyPlan) == 0 {
		return nil
	}
	for _, ev := range env.StudyPlan {
		if ev.Title == "" || ev.Date == "" {
			return nil
		}
	}
	return env.StudyPlan
}

// normalize removes truncation fragments and collapses the blank-line runs the
// stripped block leaves behind.
func normalize(text string) string {
	text = fragmentRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
