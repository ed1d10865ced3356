package errors

// ErrorInfo contains detailed error information returned to clients.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "EMAIL_TAKEN"
	Details string `json:"details,omitempty"` // Detailed error description (optional)
}

// Response is the error envelope emitted by the centralized error handler.
// It mirrors the success envelope in the delivery layer's response package.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
