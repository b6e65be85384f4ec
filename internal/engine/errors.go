package engine

import "errors"

// ErrMissingCourseMetadata indicates a course code referenced by a
// requirement or prerequisite map has no course metadata entry, so a credit
// lookup could not be satisfied. This is a catalog data-integrity fault, not
// a transient condition.
var ErrMissingCourseMetadata = errors.New("missing course metadata")
