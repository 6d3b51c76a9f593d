// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

// Option represents a value that may be absent.
// It is the value-mode result carrier of [Apply] and [Table.Dispatch]:
// present after a dispatch, absent when the selector fell outside the domain.
// The zero value is None.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// Or returns the value if present, otherwise fallback.
func (o Option[A]) Or(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// Unwrap returns the value.
// Panics if no value is present.
func (o Option[A]) Unwrap() A {
	if !o.present {
		panic("gamut: Unwrap of absent Option")
	}
	return o.value
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// Flatten collapses one level of Option nesting: Some(Some(x)) becomes
// Some(x), Some(None) and None become None. [ApplyOption] is defined
// through it; use it directly to collapse a dispatched handler's own
// optional result.
func Flatten[A any](o Option[Option[A]]) Option[A] {
	if o.present {
		return o.value
	}
	return None[A]()
}
