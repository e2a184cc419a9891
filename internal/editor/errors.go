package editor

import "errors"

var (
	ErrNoActiveDraft        = errors.New("no active draft")
	ErrRecordNotFound       = errors.New("record not found")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidField         = errors.New("invalid field value")
)
