package errs

// Error categories shared by every layer. Domain sentinels carry one of these
// as a mark so handlers can map them to a response without knowing each sentinel.
var (
	ErrValidation   = New("validation error")
	ErrAvailability = New("insufficient availability")
	ErrInvalidState = New("invalid state transition")
	ErrNotFound     = New("entity not found")
	ErrSignature    = New("signature verification failed")
	ErrForbidden    = New("forbidden")
	ErrConflict     = New("conflict")
)

// Validation returns a new sentinel marked as a validation failure.
func Validation(msg string) error { return Mark(New(msg), ErrValidation) }

func Availability(msg string) error { return Mark(New(msg), ErrAvailability) }

func InvalidState(msg string) error { return Mark(New(msg), ErrInvalidState) }

func NotFound(msg string) error { return Mark(New(msg), ErrNotFound) }

func Signature(msg string) error { return Mark(New(msg), ErrSignature) }

func Forbidden(msg string) error { return Mark(New(msg), ErrForbidden) }

func Conflict(msg string) error { return Mark(New(msg), ErrConflict) }

var categories = []error{
	ErrValidation,
	ErrAvailability,
	ErrInvalidState,
	ErrNotFound,
	ErrSignature,
	ErrForbidden,
	ErrConflict,
}

// CategoryOf returns the category err was marked with, or nil.
func CategoryOf(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if HasMark(err, c) {
			return c
		}
	}
	return nil
}
