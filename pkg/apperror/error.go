package apperror

import "errors"

// Code classifies an AppError for the caller.
type Code string

const (
	CodeNotFound      Code = "NOT_FOUND"
	CodeInvalidAction Code = "INVALID_ACTION"
	CodeBadRequest    Code = "BAD_REQUEST"
	CodeConflict      Code = "CONFLICT"
	CodeInternal      Code = "INTERNAL"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, nil)
}

func InvalidAction(message string) *AppError {
	return New(CodeInvalidAction, message, nil)
}

func Internal(err error) *AppError {
	return New(CodeInternal, "Internal error", err)
}

// CodeOf returns the code of the first AppError in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
