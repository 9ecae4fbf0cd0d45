package model

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message exchange unit in a conversation thread.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Scope carries the request identity through the use-case layer.
// ThreadID is the external key identifying one ongoing conversation.
type Scope struct {
	ThreadID string
}
