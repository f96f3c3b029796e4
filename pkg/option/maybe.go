package option

import "fmt"

// Maybe is an Option that either holds a value (Some) or does not (None).
//
// The zero value is None.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some returns a Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPointer returns Some(*p) if p is not nil, None otherwise.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// FromOK adapts the comma-ok idiom (map lookups, type assertions, channel receives).
func FromOK[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// HasValue implements the Option interface.
func (m Maybe[T]) HasValue() bool {
	return m.present
}

// Value implements the Option interface.
//
// It returns the zero value of T for None.
func (m Maybe[T]) Value() T {
	return m.value
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	if !m.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", m.value)
}
