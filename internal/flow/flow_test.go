package flow_test

import (
	"testing"

	"examprep-backend/internal/flow"
	"examprep-backend/internal/model"
)

func user(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleUser, Content: content}
}

func assistant(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleAssistant, Content: content}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		history []model.ChatMessage
		want    model.Flow
	}{
		{
			name:    "empty history",
			history: nil,
			want:    model.FlowNone,
		},
		{
			name:    "plain chat",
			history: []model.ChatMessage{user("what score do I need to pass?")},
			want:    model.FlowNone,
		},
		{
			name:    "video intent in latest turn",
			history: []model.ChatMessage{user("Can you explain photosynthesis?")},
			want:    model.FlowVideoAssist,
		},
		{
			name:    "scheduling intent in latest turn",
			history: []model.ChatMessage{user("Help me build a study plan for biology")},
			want:    model.FlowScheduling,
		},
		{
			name: "scheduling intent from earlier turn survives clarifications",
			history: []model.ChatMessage{
				user("I need a study schedule for my exam"),
				assistant("Sure - when is the exam and how many hours per day?"),
				user("May 20th, about 2 hours a day"),
			},
			want: model.FlowScheduling,
		},
		{
			name: "video wins a single-turn tie",
			history: []model.ChatMessage{
				user("Explain how to schedule my revision"),
			},
			want: model.FlowVideoAssist,
		},
		{
			name: "video keyword in old turn does not fire",
			history: []model.ChatMessage{
				user("explain derivatives to me"),
				assistant("Derivatives measure rates of change."),
				user("thanks, that helps"),
			},
			want: model.FlowNone,
		},
		{
			name: "case insensitive",
			history: []model.ChatMessage{
				user("SET UP A STUDY PLAN PLEASE"),
			},
			want: model.FlowScheduling,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flow.Classify(tt.history); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectBothSignals(t *testing.T) {
	history := []model.ChatMessage{
		user("I want a study plan for calculus"),
		assistant("When is the exam?"),
		user("Also, show me how integrals work with a video"),
	}

	res := flow.Detect(history)
	if !res.Scheduling {
		t.Errorf("expected scheduling signal from earlier turn")
	}
	if !res.VideoAssist {
		t.Errorf("expected video signal from latest turn")
	}
}

func TestDetectIgnoresAssistantTurnForVideo(t *testing.T) {
	history := []model.ChatMessage{
		user("hello"),
		assistant("Would you like to watch a video about this?"),
	}

	res := flow.Detect(history)
	if res.VideoAssist {
		t.Errorf("assistant turn must not trigger video intent")
	}
}
