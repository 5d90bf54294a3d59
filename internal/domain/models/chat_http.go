package models

// Requests for assistant HTTP endpoints.

type AskRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionID string `json:"session_id" validate:"omitempty,max=100"`
}

type ChatHistoryRequest struct {
	SessionID string `query:"session_id" json:"session_id" validate:"omitempty,max=100"`
	Limit     int    `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}
