package composer

import "errors"

var (
	ErrSessionNotFound  = errors.New("composer session not found")
	ErrSessionForbidden = errors.New("composer session belongs to another user")
	ErrUnknownField     = errors.New("unknown field")
	ErrFieldType        = errors.New("wrong value type")
	ErrFieldValue       = errors.New("value not allowed")
	ErrImageIndex       = errors.New("image index out of range")
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrNotFinalStep     = errors.New("composer has not reached the final step")
)
