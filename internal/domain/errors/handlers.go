package errors

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`             // User-facing message
	Code    string `json:"code"`              // Business error code, e.g. "INSUFFICIENT_BALANCE"
	Details any    `json:"details,omitempty"` // Validation fields or a short note for 4xx errors (optional)
}
