package errs

import "errors"

// Error classes shared by the usecase layers. Usecase sentinels belong to one
// of these so handlers can map them to a status code.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// classifiedError matches itself and its class under Is, and nothing else:
// two sentinels of the same class stay distinguishable.
type classifiedError struct {
	msg   string
	class error
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Is(target error) bool {
	return target == e.class
}

// Classified returns a sentinel error that belongs to the given class.
func Classified(msg string, class error) error {
	return &classifiedError{msg: msg, class: class}
}
