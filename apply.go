// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Applicative combination of independent scopes.
//
// Apply and its derived forms are expressible with Bind, but they are the
// natural shape for "acquire N independent resources and combine their
// values": acquisitions nest left to right and release in reverse order.

// Apply combines a scoped function with a scoped argument.
// The function's resource is acquired first and released last; the
// argument's resource nests inside it.
func Apply[R, A, B any](mf Scoped[R, func(A) B], ma Scoped[R, A]) Scoped[R, B] {
	return func(use func(B) R) R {
		return mf(func(f func(A) B) R {
			return ma(func(a A) R {
				return use(f(a))
			})
		})
	}
}

// Map2 combines two independent scopes with a binary function.
func Map2[R, A, B, C any](ma Scoped[R, A], mb Scoped[R, B], f func(A, B) C) Scoped[R, C] {
	return func(use func(C) R) R {
		return ma(func(a A) R {
			return mb(func(b B) R {
				return use(f(a, b))
			})
		})
	}
}

// Map3 combines three independent scopes with a ternary function.
func Map3[R, A, B, C, D any](ma Scoped[R, A], mb Scoped[R, B], mc Scoped[R, C], f func(A, B, C) D) Scoped[R, D] {
	return Map2(ma, Map2(mb, mc, func(b B, c C) Pair[B, C] {
		return Pair[B, C]{Fst: b, Snd: c}
	}), func(a A, bc Pair[B, C]) D {
		return f(a, bc.Fst, bc.Snd)
	})
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip pairs the values of two independent scopes.
func Zip[R, A, B any](ma Scoped[R, A], mb Scoped[R, B]) Scoped[R, Pair[A, B]] {
	return Map2(ma, mb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}
