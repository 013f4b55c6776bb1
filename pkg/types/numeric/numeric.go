package numeric

import (
	"cmp"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfDomain is returned when a value falls outside a domain's bounds.
	ErrOutOfDomain = errors.New("numeric: value out of domain")

	// ErrNegativeSize is returned when constructing a Size from a negative count.
	ErrNegativeSize = errors.New("numeric: size must be non-negative")
)

// Domain is a named inclusive numeric range [Min, Max] with cast-or-fail
// validation. It is the single mechanism behind range-restricted numeric
// types: validate once at the boundary, then carry the plain value.
type Domain[T cmp.Ordered] struct {
	name string
	min  T
	max  T
}

// NewDomain creates a Domain with the given inclusive bounds.
// It panics if min > max.
func NewDomain[T cmp.Ordered](name string, min, max T) Domain[T] {
	if min > max {
		panic("numeric: domain min exceeds max")
	}
	return Domain[T]{name: name, min: min, max: max}
}

// Name returns the domain's name, used in error messages.
func (d Domain[T]) Name() string { return d.name }

// Min returns the inclusive lower bound.
func (d Domain[T]) Min() T { return d.min }

// Max returns the inclusive upper bound.
func (d Domain[T]) Max() T { return d.max }

// Contains reports whether v lies within the domain.
func (d Domain[T]) Contains(v T) bool {
	return v >= d.min && v <= d.max
}

// Cast returns v unchanged if it lies within the domain,
// otherwise the zero value and an error wrapping ErrOutOfDomain.
func (d Domain[T]) Cast(v T) (T, error) {
	if !d.Contains(v) {
		var zero T
		return zero, errors.Wrapf(ErrOutOfDomain, "%s: %v not in [%v, %v]", d.name, v, d.min, d.max)
	}
	return v, nil
}

// MustCast is like Cast but panics on failure.
// Intended for values the caller has already established as valid.
func (d Domain[T]) MustCast(v T) T {
	result, err := d.Cast(v)
	if err != nil {
		panic(err)
	}
	return result
}

// Clamp returns v forced into the domain: Min if below, Max if above,
// v unchanged otherwise.
func (d Domain[T]) Clamp(v T) T {
	if v < d.min {
		return d.min
	}
	if v > d.max {
		return d.max
	}
	return v
}
