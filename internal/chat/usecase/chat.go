package usecase

import (
	"context"
	"fmt"

	"examprep-backend/internal/chat"
	"examprep-backend/internal/flow"
	"examprep-backend/internal/model"
	"examprep-backend/internal/plan"
	"examprep-backend/pkg/chatapi"
)

func (uc *implUseCase) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	if len(input.Messages) == 0 {
		return chat.RespondOutput{}, chat.ErrEmptyTranscript
	}

	classified := flow.Classify(input.Messages)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := uc.api.GenerateContent(ctx, buildRequest(classified, input.Messages))
	if err != nil {
		uc.l.Errorf(ctx, "chat completion failed: %v", err)
		return chat.RespondOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		uc.l.Errorf(ctx, "chat completion returned no choices (id=%s)", resp.ID)
		return chat.RespondOutput{}, chat.ErrUpstream
	}

	display, events := plan.Extract(resp.Choices[0].Message.Content)
	if len(events) > 0 {
		uc.l.Infof(ctx, "extracted study plan with %d events from reply", len(events))
	}

	return chat.RespondOutput{
		Message: display,
		Flow:    classified,
		Events:  events,
	}, nil
}

// buildRequest prepends the flow's system prompt to the transcript in the
// completion wire format.
func buildRequest(classified model.Flow, history []model.ChatMessage) *chatapi.Request {
	messages := make([]chatapi.Message, 0, len(history)+1)
	messages = append(messages, chatapi.Message{
		Role:    string(model.RoleSystem),
		Content: promptFor(classified),
	})
	for _, msg := range history {
		messages = append(messages, chatapi.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return &chatapi.Request{Messages: messages}
}
