package optional

// Optional is a two-variant value wrapper: either Some (a value is present)
// or None (no value). It makes absence explicit in the type system instead
// of relying on nil or a thrown error, and is the result type used by
// operations where absence is ordinary control flow rather than a failure.
//
// The zero value of Optional[T] is None.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional carrying value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether no value is present.
func (o Optional[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the carried value.
// It panics if called on None; callers that cannot rule absence out
// should use Get or UnwrapOr instead.
func (o Optional[T]) Unwrap() T {
	if !o.present {
		panic("optional: Unwrap called on None")
	}
	return o.value
}

// UnwrapOr returns the carried value, or fallback if the Optional is None.
func (o Optional[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// Get returns the carried value and whether it is present,
// bridging to the native comma-ok idiom.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}
