package chat

// ChatRequest is one user message to the assistant.
type ChatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Agent   string `json:"agent"   binding:"required"`
	Message string `json:"message" binding:"required,min=1,max=4000"`
}

// ChatResponse is the assistant's reply plus the routing verdict.
type ChatResponse struct {
	Answer         string  `json:"answer"`
	Decision       string  `json:"decision"`
	Action         string  `json:"action,omitempty"`
	SuggestedAgent string  `json:"suggested_agent,omitempty"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason,omitempty"`
	PlanID         string  `json:"plan_id,omitempty"`
	Provider       string  `json:"provider,omitempty"`
}

// AdaptRequest asks for content rewritten per perception modality.
type AdaptRequest struct {
	Content    string   `json:"content" binding:"required,min=1,max=8000"`
	Modalities []string `json:"modalities" binding:"omitempty,dive,oneof=визуал аудиал кинестетик"`
}

// AdaptResponse maps modality to adapted content.
type AdaptResponse struct {
	Adaptations map[string]string `json:"adaptations"`
}

// ResetRequest clears a user's conversation session.
type ResetRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
