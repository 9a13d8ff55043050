// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Optional-failure layer.
// Opt[M] wraps an inner context whose value type is Option[A]; a None
// value short-circuits the rest of the layered computation while every
// resource already acquired is still released normally.

// Option represents a value that may be absent.
type Option[A any] struct {
	value A
	ok    bool
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// Opt is the optional-failure layer over an inner context M.
// M must carry Option values; the generic functions below maintain that
// relation in their signatures.
type Opt[M any] struct{ Run M }

// OptEmbed derives the embedding capability at the optional layer from
// the inner context's capability.
type OptEmbed[R, A, M any] struct {
	Inner Embedder[R, Option[A], M]
}

// Embed implements Embedder by injecting into Some and delegating to the
// inner context.
func (e OptEmbed[R, A, M]) Embed(m Scoped[R, A]) Opt[M] {
	return Opt[M]{Run: e.Inner.Embed(Map(m, Some[A]))}
}

// LiftOpt embeds a scoped computation into the optional layer over the
// scoped base.
func LiftOpt[R, A any](m Scoped[R, A]) Opt[Scoped[R, Option[A]]] {
	return Opt[Scoped[R, Option[A]]]{Run: Map(m, Some[A])}
}

// PureOpt lifts a plain value into the optional layer over the base.
func PureOpt[R, A any](a A) Opt[Scoped[R, Option[A]]] {
	return Opt[Scoped[R, Option[A]]]{Run: Return[R](Some(a))}
}

// NoneOpt is the failing computation in the optional layer over the base.
func NoneOpt[R, A any]() Opt[Scoped[R, Option[A]]] {
	return Opt[Scoped[R, Option[A]]]{Run: Return[R](None[A]())}
}

// MapOpt applies a pure function at the optional layer over the base.
func MapOpt[R, A, B any](m Opt[Scoped[R, Option[A]]], f func(A) B) Opt[Scoped[R, Option[B]]] {
	return Opt[Scoped[R, Option[B]]]{Run: Map(m.Run, func(oa Option[A]) Option[B] {
		return MapOption(oa, f)
	})}
}

// BindOpt sequences at the optional layer over the base.
// A None result skips f; acquisitions already made by m are still
// released in order.
func BindOpt[R, A, B any](m Opt[Scoped[R, Option[A]]], f func(A) Opt[Scoped[R, Option[B]]]) Opt[Scoped[R, Option[B]]] {
	return Opt[Scoped[R, Option[B]]]{Run: Bind(m.Run, func(oa Option[A]) Scoped[R, Option[B]] {
		if a, ok := oa.Get(); ok {
			return f(a).Run
		}
		return Return[R](None[B]())
	})}
}

// RunOpt executes an optional-layer computation over the base against a
// continuation observing the Option.
func RunOpt[R, A any](m Opt[Scoped[R, Option[A]]], use func(Option[A]) R) R {
	return m.Run(use)
}
