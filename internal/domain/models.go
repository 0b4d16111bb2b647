package domain

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// DefaultPersona is the fixed instruction placed in the system turn of every
// consultation.
const DefaultPersona = "You are Lawra, an AI lawyer. Answer briefly and to the point " +
	"in no more than 10 lines, focus on the key legal issues, and recommend " +
	"consulting a professional lawyer for complex matters."

// ConversationTurn is one message of a chat conversation.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a single question asked against a conversation.
// History is supplied in full by the caller on every call.
type CompletionRequest struct {
	SystemPrompt string             `json:"system_prompt"`
	History      []ConversationTurn `json:"history"`
	NewMessage   string             `json:"new_message"`
	Model        string             `json:"model"`
	MaxTokens    int                `json:"max_tokens"`
}

// Messages returns the outbound message sequence: the system turn, the
// history in order, then the new user turn.
func (r *CompletionRequest) Messages() []ConversationTurn {
	messages := make([]ConversationTurn, 0, len(r.History)+2)
	messages = append(messages, ConversationTurn{Role: RoleSystem, Content: r.SystemPrompt})
	messages = append(messages, r.History...)
	messages = append(messages, ConversationTurn{Role: RoleUser, Content: r.NewMessage})
	return messages
}

// CompletionResponse is a successful completion. Text is never empty and
// carries no leading or trailing whitespace.
type CompletionResponse struct {
	ID           string    `json:"id"`
	Model        string    `json:"model"`
	Text         string    `json:"text"`
	FinishReason string    `json:"finish_reason"`
	Usage        Usage     `json:"usage"`
	FinishTime   time.Time `json:"finish_time"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ProviderRecord is a lawyer listed in the directory.
type ProviderRecord struct {
	ID                string  `json:"id"                  yaml:"id"`
	DisplayName       string  `json:"display_name"        yaml:"display_name"`
	SpecialtyTag      string  `json:"specialty"           yaml:"specialty"`
	YearsExperience   int     `json:"years_experience"    yaml:"years_experience"`
	Rating            float64 `json:"rating"              yaml:"rating"`
	HourlyRate        float64 `json:"hourly_rate"         yaml:"hourly_rate"`
	Verified          bool    `json:"verified"            yaml:"verified"`
	ResponseTimeLabel string  `json:"response_time_label" yaml:"response_time_label"`
	Avatar            string  `json:"avatar,omitempty"    yaml:"avatar"`
}

// FilterCriteria selects a subset of the directory.
type FilterCriteria struct {
	SearchText   string    `json:"search_text"`
	SpecialtyTag string    `json:"specialty"`
	PriceBand    PriceBand `json:"price_band"`
}
