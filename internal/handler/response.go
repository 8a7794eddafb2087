// Package handler exposes the HTTP handlers for the public dealership API.
// Every endpoint replies with the same JSON envelope: {success, data, meta?}
// on success, {success:false, error, code, details?} on failure.
package handler

// Error categories carried in the failure envelope.  Anything that cannot be
// classified into one of these falls through to the central error handler.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeBusinessRuleError = "BUSINESS_RULE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Meta is the pagination block attached to list responses.
type Meta struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func successResponse(data any, meta *Meta) Envelope {
	return Envelope{Success: true, Data: data, Meta: meta}
}

func errorResponse(msg, code string, details any) Envelope {
	return Envelope{Success: false, Error: msg, Code: code, Details: details}
}
