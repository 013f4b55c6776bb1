package numeric

import "github.com/pkg/errors"

// Size is a validated non-negative integer count, used for buffer
// capacities and element counts.
type Size int

// NewSize returns n as a Size, or an error wrapping ErrNegativeSize
// if n is negative.
func NewSize(n int) (Size, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegativeSize, "got %d", n)
	}
	return Size(n), nil
}

// MustSize is like NewSize but panics on a negative count.
func MustSize(n int) Size {
	s, err := NewSize(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Int returns the size as a plain int.
func (s Size) Int() int { return int(s) }
