package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller does not own the resource
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if credentials or tokens are missing or invalid
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDataUnavailable will throw if a backing store could not be read
	ErrDataUnavailable = errors.New("data is temporarily unavailable")
)

// FieldError is a validation failure tied to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Is lets errors.Is(err, ErrBadParamInput) match field errors.
func (e *FieldError) Is(target error) bool {
	return target == ErrBadParamInput
}
