package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the envelope used when the error middleware has to
// build the body itself, outside the response helpers.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
