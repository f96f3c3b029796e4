// Package option provides combinators over optional values.
//
// The combinators accept any Option implementation, so callers can keep using
// the optional type they already have. Maybe is the package's own implementation.
package option

// Option represents an optional value.
// It either contains a value or it does not.
//
// This interface is modeled after github.com/sagikazarmark/go-option.Option
//
// A nil Option is treated as empty. Implementations with pointer receivers
// must handle a nil receiver themselves: it is not checked before calling HasValue.
type Option[T any] interface {
	// HasValue returns true if the Option contains a value.
	HasValue() bool

	// Value returns the value (or its default) stored in the Option.
	Value() T
}

// present reports whether o holds a value. A nil Option holds nothing.
func present[T any](o Option[T]) bool {
	return o != nil && o.HasValue()
}
