package content

import "github.com/pkg/errors"

var (
	ErrNoContent       = errors.New("No content")
	ErrConflict        = errors.New("Conflict")
	ErrUnauthenticated = errors.New("Unauthenticated")
	ErrForbidden       = errors.New("Forbidden")
)

// ValidationError is returned when an entity is missing required data.
type ValidationError struct {
	error
}

func NewValidationError(err error) error {
	return ValidationError{err}
}

func (e ValidationError) Cause() error {
	return e.error
}

func IsValidation(err error) bool {
	for err != nil {
		if _, ok := err.(ValidationError); ok {
			return true
		}

		c, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = c.Cause()
	}

	return false
}

func IsNoContent(err error) bool {
	return errors.Cause(err) == ErrNoContent
}

func IsConflict(err error) bool {
	return errors.Cause(err) == ErrConflict
}
