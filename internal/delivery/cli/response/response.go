package response

import (
	"context"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"
)

// Result standardizes what the dispatcher hands back to the caller
type Result struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Data      interface{}   `json:"data,omitempty"`
	Code      apperror.Code `json:"code,omitempty"`
	Error     interface{}   `json:"error,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	Exit      bool          `json:"exit,omitempty"`
}

// Success builds a success result
func Success(ctx context.Context, message string, data interface{}) Result {
	return Result{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: audit.RequestIDFrom(ctx),
	}
}

// Error builds a failed result
func Error(ctx context.Context, code apperror.Code, message string, err interface{}) Result {
	return Result{
		Success:   false,
		Message:   message,
		Code:      code,
		Error:     err,
		RequestID: audit.RequestIDFrom(ctx),
	}
}
