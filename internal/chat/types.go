package chat

import (
	"examprep-backend/internal/model"
)

// RespondInput is the transcript to answer. The latest entry is the user turn
// being replied to.
type RespondInput struct {
	Messages []model.ChatMessage
}

// RespondOutput carries the display reply and the machine artifacts pulled
// out of it.
type RespondOutput struct {
	// Message is the assistant reply with any machine block stripped.
	Message string
	// Flow is the classified intent of the transcript.
	Flow model.Flow
	// Events is the extracted study plan; empty when the reply carried none.
	Events []model.EventDescriptor
}
