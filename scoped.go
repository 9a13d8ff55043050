// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Scoped represents a resource-scoped computation.
// Scoped[R, A] yields a value of type A to a continuation, with final
// result type R.
//
// The function receives a continuation use of type func(A) R, which
// represents "everything that happens while the resource is valid".
// Applying use to the acquired value produces the final result of type R;
// the Scoped value guarantees release happens after use returns or fails,
// before the result propagates.
//
// A Scoped value is inert: constructing one performs no acquisition.
// Acquisition and release happen only during an execution call ([With],
// [Run], [RunErr]), and executing the same value twice performs two
// independent acquire/release cycles.
type Scoped[R, A any] func(use func(A) R) R

// Wrap creates a Scoped value from an acquire-with-callback primitive.
// This is the primitive constructor for resources exposed in bracketed
// form, e.g. "open, call back with the handle, close".
//
// Contract: f must already guarantee that release occurs exactly once per
// invocation, including when the continuation fails. Wrap adds no fault
// recovery of its own; combinators compose the underlying guarantee.
func Wrap[R, A any](f func(use func(A) R) R) Scoped[R, A] {
	return Scoped[R, A](f)
}

// Return lifts a plain value into a resource-scoped computation.
// The resulting computation has no acquisition or release semantics:
// executing it immediately passes the value to its continuation.
func Return[R, A any](a A) Scoped[R, A] {
	return func(use func(A) R) R {
		return use(a)
	}
}

// Enclose wraps a bracketing side effect that yields no usable value,
// e.g. "run this block with a lock held". The around function receives
// the rest of the computation as run and must call it exactly once,
// restoring whatever it set up before returning or propagating failure.
func Enclose[R any](around func(run func() R) R) Scoped[R, struct{}] {
	return func(use func(struct{}) R) R {
		return around(func() R {
			return use(struct{}{})
		})
	}
}
