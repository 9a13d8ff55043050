// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Error-with-payload layer.
// Fail[M] wraps an inner context whose value type is Either[E, A]; a Left
// value short-circuits the rest of the layered computation, with every
// resource already acquired still released normally.

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Fail is the error-with-payload layer over an inner context M.
// M must carry Either values; the generic functions below maintain that
// relation in their signatures.
type Fail[M any] struct{ Run M }

// FailEmbed derives the embedding capability at the error layer from the
// inner context's capability.
type FailEmbed[R, E, A, M any] struct {
	Inner Embedder[R, Either[E, A], M]
}

// Embed implements Embedder by injecting into Right and delegating to
// the inner context.
func (e FailEmbed[R, E, A, M]) Embed(m Scoped[R, A]) Fail[M] {
	return Fail[M]{Run: e.Inner.Embed(Map(m, Right[E, A]))}
}

// LiftFail embeds a scoped computation into the error layer over the
// scoped base.
func LiftFail[R, E, A any](m Scoped[R, A]) Fail[Scoped[R, Either[E, A]]] {
	return Fail[Scoped[R, Either[E, A]]]{Run: Map(m, Right[E, A])}
}

// PureFail lifts a plain value into the error layer over the base.
func PureFail[R, E, A any](a A) Fail[Scoped[R, Either[E, A]]] {
	return Fail[Scoped[R, Either[E, A]]]{Run: Return[R](Right[E, A](a))}
}

// FailWith is the failing computation carrying err in the error layer
// over the base.
func FailWith[R, E, A any](err E) Fail[Scoped[R, Either[E, A]]] {
	return Fail[Scoped[R, Either[E, A]]]{Run: Return[R](Left[E, A](err))}
}

// MapFail applies a pure function at the error layer over the base.
func MapFail[R, E, A, B any](m Fail[Scoped[R, Either[E, A]]], f func(A) B) Fail[Scoped[R, Either[E, B]]] {
	return Fail[Scoped[R, Either[E, B]]]{Run: Map(m.Run, func(ea Either[E, A]) Either[E, B] {
		return MapEither(ea, f)
	})}
}

// BindFail sequences at the error layer over the base.
// A Left result skips f; acquisitions already made by m are still
// released in order.
func BindFail[R, E, A, B any](m Fail[Scoped[R, Either[E, A]]], f func(A) Fail[Scoped[R, Either[E, B]]]) Fail[Scoped[R, Either[E, B]]] {
	return Fail[Scoped[R, Either[E, B]]]{Run: Bind(m.Run, func(ea Either[E, A]) Scoped[R, Either[E, B]] {
		if a, ok := ea.GetRight(); ok {
			return f(a).Run
		}
		err, _ := ea.GetLeft()
		return Return[R](Left[E, B](err))
	})}
}

// RunFail executes an error-layer computation over the base against a
// continuation observing the Either.
func RunFail[R, E, A any](m Fail[Scoped[R, Either[E, A]]], use func(Either[E, A]) R) R {
	return m.Run(use)
}
