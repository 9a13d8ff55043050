// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Ambient-configuration layer.
// Ambient[E, M] is a function from a read-only environment to an inner
// context; the environment is shared, never threaded back out.

// Ambient is the reader layer over an inner context M.
type Ambient[E, M any] func(env E) M

// EnvEmbed derives the embedding capability at the reader layer from the
// inner context's capability. The embedded scope ignores the environment.
type EnvEmbed[R, E, A, M any] struct {
	Inner Embedder[R, A, M]
}

// Embed implements Embedder by discarding the environment and delegating
// to the inner context.
func (e EnvEmbed[R, E, A, M]) Embed(m Scoped[R, A]) Ambient[E, M] {
	return func(E) M {
		return e.Inner.Embed(m)
	}
}

// LiftEnv embeds a scoped computation into the reader layer over the
// scoped base.
func LiftEnv[R, E, A any](m Scoped[R, A]) Ambient[E, Scoped[R, A]] {
	return func(E) Scoped[R, A] {
		return m
	}
}

// PureEnv lifts a plain value into the reader layer over the base.
func PureEnv[R, E, A any](a A) Ambient[E, Scoped[R, A]] {
	return func(E) Scoped[R, A] {
		return Return[R](a)
	}
}

// AskEnv yields the environment itself.
func AskEnv[R, E any]() Ambient[E, Scoped[R, E]] {
	return func(env E) Scoped[R, E] {
		return Return[R](env)
	}
}

// BindEnv sequences at the reader layer over the base, passing the same
// environment to both computations.
func BindEnv[R, E, A, B any](m Ambient[E, Scoped[R, A]], f func(A) Ambient[E, Scoped[R, B]]) Ambient[E, Scoped[R, B]] {
	return func(env E) Scoped[R, B] {
		return Bind(m(env), func(a A) Scoped[R, B] {
			return f(a)(env)
		})
	}
}

// RunEnv executes a reader-layer computation over the base with the
// given environment.
func RunEnv[R, E, A any](env E, m Ambient[E, Scoped[R, A]], use func(A) R) R {
	return m(env)(use)
}
