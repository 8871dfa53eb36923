package dto

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse represents a simple acknowledgement response
type MessageResponse struct {
	Message string `json:"message"`
}
