package dtos

type ChatMessage struct {
	// Role is "user" or "model" (the SPA's naming; "assistant" is accepted too).
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	// Fallback is true when the generative call failed and the canned-response
	// path answered instead; the UI shows a non-blocking notice.
	Fallback bool `json:"fallback"`
}
