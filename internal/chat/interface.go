package chat

import (
	"context"
)

// UseCase is the chat proxy: transcript in, display reply plus machine
// artifacts out.
type UseCase interface {
	// Respond classifies the transcript, forwards it to the completion
	// service under the flow's system prompt, and extracts any embedded
	// study plan from the reply.
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)
}
