package option

import "iter"

// Either returns onPresent(value) if o holds a value, onAbsent() otherwise.
//
// Exactly one of the callbacks is called, exactly once.
// Panics raised by the callbacks are not recovered.
func Either[I, O any](o Option[I], onPresent func(I) O, onAbsent func() O) O {
	if present(o) {
		return onPresent(o.Value())
	}

	return onAbsent()
}

// Consume calls onPresent with the value if o holds one, onAbsent otherwise.
func Consume[I any](o Option[I], onPresent func(I), onAbsent func()) {
	if present(o) {
		onPresent(o.Value())

		return
	}

	onAbsent()
}

// IfPresent calls onPresent with the value if o holds one.
func IfPresent[T any](o Option[T], onPresent func(T)) {
	Consume(o, onPresent, func() {})
}

// IfAbsent calls onAbsent if o holds no value.
func IfAbsent[T any](o Option[T], onAbsent func()) {
	Consume(o, func(T) {}, onAbsent)
}

// Stream returns a sequence yielding the value of o, or nothing if o is empty.
//
// The value is captured when Stream is called.
// The sequence can be ranged over any number of times.
func Stream[T any](o Option[T]) iter.Seq[T] {
	return Either(o, single[T], empty[T])
}

func single[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

func empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}
