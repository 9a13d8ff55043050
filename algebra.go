// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Algebraic lifting.
//
// Operations on Scoped[R, A] are derived from the same operations on A by
// lifting through Map2/Map, so they inherit the underlying structure's
// laws. Algebraic structure is passed as an explicit dictionary value
// rather than hidden behind operator methods, keeping the derivation
// visible and testable.

// Monoid is a dictionary for a monoid on A: an identity element and an
// associative binary operation.
type Monoid[A any] struct {
	Empty   A
	Combine func(A, A) A
}

// LiftMonoid derives a monoid on Scoped[R, A] from a monoid on A.
// Identity is Return(m.Empty); combine acquires both scopes (left first,
// released last) and combines their values.
func LiftMonoid[R, A any](m Monoid[A]) Monoid[Scoped[R, A]] {
	return Monoid[Scoped[R, A]]{
		Empty: Return[R](m.Empty),
		Combine: func(x, y Scoped[R, A]) Scoped[R, A] {
			return Map2(x, y, m.Combine)
		},
	}
}

// Fold combines any number of scopes under a monoid on A.
// With no arguments the result is Return(m.Empty); otherwise scopes are
// combined left to right, so acquisitions nest left to right and release
// in reverse order.
func Fold[R, A any](m Monoid[A], ms ...Scoped[R, A]) Scoped[R, A] {
	lifted := LiftMonoid[R](m)
	acc := lifted.Empty
	for _, s := range ms {
		acc = lifted.Combine(acc, s)
	}
	return acc
}

// Number constrains to Go's numeric kernel types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Add lifts + pointwise over two scopes.
func Add[R any, N Number](x, y Scoped[R, N]) Scoped[R, N] {
	return Map2(x, y, func(a, b N) N { return a + b })
}

// Sub lifts - pointwise over two scopes.
func Sub[R any, N Number](x, y Scoped[R, N]) Scoped[R, N] {
	return Map2(x, y, func(a, b N) N { return a - b })
}

// Mul lifts * pointwise over two scopes.
func Mul[R any, N Number](x, y Scoped[R, N]) Scoped[R, N] {
	return Map2(x, y, func(a, b N) N { return a * b })
}

// Neg lifts unary negation pointwise over a scope.
func Neg[R any, N Number](x Scoped[R, N]) Scoped[R, N] {
	return Map(x, func(a N) N { return -a })
}

// Sum adds any number of scoped values; with no arguments it is Return(0).
func Sum[R any, N Number](xs ...Scoped[R, N]) Scoped[R, N] {
	return Fold(Monoid[N]{Combine: func(a, b N) N { return a + b }}, xs...)
}

// Product multiplies any number of scoped values; with no arguments it is
// Return(1).
func Product[R any, N Number](xs ...Scoped[R, N]) Scoped[R, N] {
	return Fold(Monoid[N]{Empty: 1, Combine: func(a, b N) N { return a * b }}, xs...)
}
