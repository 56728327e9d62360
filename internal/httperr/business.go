package httperr

import "errors"

// ===============================
// Error taxonomy
// ===============================
//
// Validation: malformed, missing or invalid input  -> 400
// Conflict:   uniqueness violation                 -> 400
// NotFound:   referenced entity absent             -> 404
// Anything else propagates to the generic 500 boundary.

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

// KindOf returns the taxonomy kind of err, or zero for non-business errors.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}

func IsCode(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
