// Package errs is a thin seam over cockroachdb/errors so call sites never
// import the library directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches a sentinel so Is(err, markErr) holds without losing the
// underlying cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether target appears in err's chain, including marks attached
// via Mark. Marks are not visible to the standard library's errors.Is, so
// sentinel checks must go through here.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
