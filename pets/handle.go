package pets

import "errors"

// ErrMoved is returned when a handle's value has already been taken.
var ErrMoved = errors.New("value already moved out of handle")

// Handle holds a value under single-owner transfer semantics. Go has no
// compiler-tracked moves, so the rule is a checked convention: the first
// Take yields the value and consumes the handle, every later Take fails
// with ErrMoved. Callers hand around *Handle instead of the raw value
// whenever ownership is meant to transfer exactly once.
type Handle[T any] struct {
	value T
	moved bool
}

// NewHandle wraps v for a single ownership transfer.
func NewHandle[T any](v T) *Handle[T] {
	return &Handle[T]{value: v}
}

// Take moves the value out. The handle is consumed: subsequent calls
// return the zero value and ErrMoved.
func (h *Handle[T]) Take() (T, error) {
	if h.moved {
		var zero T
		return zero, ErrMoved
	}
	h.moved = true
	v := h.value
	var zero T
	h.value = zero
	return v, nil
}

// Moved reports whether the value has been taken.
func (h *Handle[T]) Moved() bool { return h.moved }
