package model

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one turn of a conversation. CreatedAt is an ISO/RFC3339
// string because the transcript round-trips through client storage verbatim.
type ChatMessage struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	VideoID   string `json:"videoId,omitempty"`
	VideoURL  string `json:"videoUrl,omitempty"`
}
