package catalog

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Equal returns nil when want and got are equal, or an ErrMismatch naming
// what and carrying the diff.
func Equal[T any](what string, want, got T, opts ...cmp.Option) error {
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		return fmt.Errorf("%w: %s (-want +got):\n%s", ErrMismatch, what, diff)
	}
	return nil
}

// True returns nil when cond holds, or an ErrMismatch naming what.
func True(what string, cond bool) error {
	if !cond {
		return fmt.Errorf("%w: %s: expected true", ErrMismatch, what)
	}
	return nil
}

// ErrorIs returns nil when err matches target.
func ErrorIs(what string, err, target error) error {
	if !errors.Is(err, target) {
		return fmt.Errorf("%w: %s: expected error %q, got %v", ErrMismatch, what, target, err)
	}
	return nil
}

// Expect joins the outcomes of several expectations; nil means all passed.
func Expect(errs ...error) error {
	return errors.Join(errs...)
}
