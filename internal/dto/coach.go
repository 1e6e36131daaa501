package dto

// CoachMessage is one turn of the coaching conversation.
type CoachMessage struct {
	Role    string `json:"role" binding:"required,oneof=user model"`
	Content string `json:"content" binding:"required"`
}

// CoachChatRequest asks the AI coach a question, optionally continuing an
// earlier conversation.
type CoachChatRequest struct {
	Message string         `json:"message" binding:"required"`
	History []CoachMessage `json:"history" binding:"omitempty,dive"`
}

// CoachChatResponse is the coach's reply.
type CoachChatResponse struct {
	Reply string `json:"reply"`
}
