package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "SELLER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope written for failed requests. Successful
// responses keep the original wire bodies and are written directly by
// the handlers.
type Response struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
