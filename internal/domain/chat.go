package domain

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the assistant chat request body.
type ChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// ChatResponse carries the assistant reply plus any recipe cards attached to it.
type ChatResponse struct {
	Response       string          `json:"response"`
	Recipes        []RecipeSummary `json:"recipes,omitempty"`
	ConversationID string          `json:"conversation_id,omitempty"`
}
