package dto

type SessionResponse struct {
	SessionId string `json:"session_id"`
	Calm      bool   `json:"calm"`
	LastQuery string `json:"last_query,omitempty"`
}

type SetCalmRequest struct {
	Calm *bool `json:"calm" validate:"required"`
}
