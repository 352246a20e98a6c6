package model

// Flow tags a conversation with the downstream behavior it should trigger.
type Flow string

const (
	// FlowScheduling routes the conversation toward study-plan creation.
	FlowScheduling Flow = "scheduling"
	// FlowVideoAssist routes the latest turn toward video search.
	FlowVideoAssist Flow = "video-assist"
	// FlowNone means plain chat with no special handling.
	FlowNone Flow = "none"
)
