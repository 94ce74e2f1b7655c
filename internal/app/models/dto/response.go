package dto

// MessageResponse is the body of every non-list response
type MessageResponse struct {
	Msg string `json:"msg" example:"Success!"`
}

// NewMessage wraps msg in a MessageResponse
func NewMessage(msg string) MessageResponse {
	return MessageResponse{Msg: msg}
}

// HealthResponse reports process and store liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
