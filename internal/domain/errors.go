package domain

import "errors"

var (
	// ErrApplicationNotFound indicates no application matched the lookup.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyDecided indicates a strict-mode decision on a decided application.
	ErrAlreadyDecided = errors.New("application already decided")
	// ErrInvalidAction indicates a decision action other than shortlist or reject.
	ErrInvalidAction = errors.New("invalid decision action")
	// ErrUnsupportedFormat indicates an unknown report export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
