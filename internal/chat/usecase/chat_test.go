package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"examprep-backend/internal/chat"
	"examprep-backend/internal/chat/usecase"
	"examprep-backend/internal/model"
	"examprep-backend/pkg/chatapi"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockChatAPI struct {
	reply   string
	err     error
	gotReq  *chatapi.Request
	choices int
}

func (m *mockChatAPI) GenerateContent(ctx context.Context, req *chatapi.Request) (*chatapi.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	resp := &chatapi.Response{ID: "cmpl-1"}
	for i := 0; i < m.choices; i++ {
		resp.Choices = append(resp.Choices, chatapi.Choice{
			Message: chatapi.Message{Role: "assistant", Content: m.reply},
		})
	}
	return resp, nil
}

func userTurn(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleUser, Content: content}
}

func TestRespondPlainChat(t *testing.T) {
	api := &mockChatAPI{reply: "Photosynthesis converts light into chemical energy.", choices: 1}
	uc := usecase.New(&mockLogger{}, api)

	out, err := uc.Respond(context.Background(), chat.RespondInput{
		Messages: []model.ChatMessage{userTurn("what is photosynthesis?")},
	})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if out.Flow != model.FlowNone {
		t.Errorf("Flow = %q, want none", out.Flow)
	}
	if out.Message != api.reply {
		t.Errorf("Message = %q", out.Message)
	}
	if len(out.Events) != 0 {
		t.Errorf("Events = %+v, want none", out.Events)
	}

	// System prompt always leads the forwarded transcript.
	if api.gotReq == nil || len(api.gotReq.Messages) != 2 {
		t.Fatalf("forwarded request = %+v", api.gotReq)
	}
	if api.gotReq.Messages[0].Role != "system" {
		t.Errorf("first forwarded role = %q, want system", api.gotReq.Messages[0].Role)
	}
}

func TestRespondSchedulingExtractsPlan(t *testing.T) {
	reply := "Here is your plan:\n\n```json\n" +
		`{"studyPlan":[{"title":"Algebra review","date":"2026-09-01","startTime":"18:00","endTime":"19:00","subject":"Math"}]}` +
		"\n```\n\nGood luck!"
	api := &mockChatAPI{reply: reply, choices: 1}
	uc := usecase.New(&mockLogger{}, api)

	out, err := uc.Respond(context.Background(), chat.RespondInput{
		Messages: []model.ChatMessage{userTurn("please schedule my study sessions for next week")},
	})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if out.Flow != model.FlowScheduling {
		t.Errorf("Flow = %q, want scheduling", out.Flow)
	}
	if len(out.Events) != 1 || out.Events[0].Title != "Algebra review" {
		t.Fatalf("Events = %+v", out.Events)
	}
	if strings.Contains(out.Message, "studyPlan") {
		t.Errorf("machine block leaked into display text: %q", out.Message)
	}

	// Scheduling flow selects the prompt that defines the machine block.
	if !strings.Contains(api.gotReq.Messages[0].Content, `"studyPlan"`) {
		t.Error("scheduling system prompt not selected")
	}
}

func TestRespondVideoAssistFlow(t *testing.T) {
	api := &mockChatAPI{reply: "Try searching for limit definition walkthroughs.", choices: 1}
	uc := usecase.New(&mockLogger{}, api)

	out, err := uc.Respond(context.Background(), chat.RespondInput{
		Messages: []model.ChatMessage{userTurn("show me a video about derivatives")},
	})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if out.Flow != model.FlowVideoAssist {
		t.Errorf("Flow = %q, want video-assist", out.Flow)
	}
}

func TestRespondEmptyTranscript(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockChatAPI{choices: 1})

	if _, err := uc.Respond(context.Background(), chat.RespondInput{}); !errors.Is(err, chat.ErrEmptyTranscript) {
		t.Fatalf("Respond() error = %v, want ErrEmptyTranscript", err)
	}
}

func TestRespondUpstreamFailure(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockChatAPI{err: errors.New("connection refused")})

	_, err := uc.Respond(context.Background(), chat.RespondInput{
		Messages: []model.ChatMessage{userTurn("hello")},
	})
	if !errors.Is(err, chat.ErrUpstream) {
		t.Fatalf("Respond() error = %v, want ErrUpstream", err)
	}
}

func TestRespondNoChoices(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockChatAPI{choices: 0})

	_, err := uc.Respond(context.Background(), chat.RespondInput{
		Messages: []model.ChatMessage{userTurn("hello")},
	})
	if !errors.Is(err, chat.ErrUpstream) {
		t.Fatalf("Respond() error = %v, want ErrUpstream", err)
	}
}
