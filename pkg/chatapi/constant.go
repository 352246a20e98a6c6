package chatapi

const (
	// DefaultBaseURL is the default chat-completion API endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "llama-3.3-70b-versatile"
)
