package repository

import "errors"

var (
	// ErrNilDocument is returned when a nil document reference is passed
	// to an operation that needs one.
	ErrNilDocument = errors.New("repository: document is nil")

	// ErrEmptyID is returned by id-based operations when no usable id
	// was supplied.
	ErrEmptyID = errors.New("repository: id is empty")

	// ErrAmbiguousID is returned when an explicit id and the document's
	// own key are both set but disagree.
	ErrAmbiguousID = errors.New("repository: id differs from the document's own key")

	// ErrDuplicateField is returned when one combined update names the
	// same field twice.
	ErrDuplicateField = errors.New("repository: duplicate field name in update")

	// ErrNoKeyGenerator is returned when a document's key type has no
	// registered generator.
	ErrNoKeyGenerator = errors.New("repository: no key generator registered for key type")

	// ErrValidation is returned when pre-write struct validation fails.
	ErrValidation = errors.New("repository: document failed validation")
)

// IsInvalidArgument reports whether err is caller misuse detected
// before any store round trip. Store failures pass through unwrapped
// and never match; "no such document" is reported as a zero count,
// false flag or absent result, never as an error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrNilDocument) ||
		errors.Is(err, ErrEmptyID) ||
		errors.Is(err, ErrAmbiguousID) ||
		errors.Is(err, ErrDuplicateField) ||
		errors.Is(err, ErrValidation)
}
