// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Monad operations for scoped computations.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate closure allocations.

// Bind sequences two scoped computations (monadic bind).
// Execution acquires m's resource, passes it to f to obtain the next
// scope, and acquires that scope's resource while m's is still held.
// Release order is the reverse of acquisition order: the resource
// produced by f is released first, then m's.
func Bind[R, A, B any](m Scoped[R, A], f func(A) Scoped[R, B]) Scoped[R, B] {
	return func(use func(B) R) R {
		return m(func(a A) R {
			return f(a)(use)
		})
	}
}

// Map applies a pure function to the value of a scoped computation.
// Release timing is unchanged: the underlying resource is released only
// after the continuation over B has completed.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func Map[R, A, B any](m Scoped[R, A], f func(A) B) Scoped[R, B] {
	return func(use func(B) R) R {
		return m(func(a A) R {
			return use(f(a))
		})
	}
}

// Then sequences two scoped computations, discarding the first value.
// The first resource remains held while the second scope runs, exactly
// as with Bind.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[R, A, B any](m Scoped[R, A], n Scoped[R, B]) Scoped[R, B] {
	return func(use func(B) R) R {
		return m(func(_ A) R {
			return n(use)
		})
	}
}
