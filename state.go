// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Shared-state threading layer.
// Stateful[S, M] is a function from the current state to an inner context
// whose value type is Pair[A, S]: the computed value together with the
// threaded-out state.

// Stateful is the state layer over an inner context M.
type Stateful[S, M any] func(s S) M

// StateEmbed derives the embedding capability at the state layer from
// the inner context's capability. The embedded scope neither reads nor
// writes the state; it threads it through unchanged.
type StateEmbed[R, S, A, M any] struct {
	Inner Embedder[R, Pair[A, S], M]
}

// Embed implements Embedder by pairing the scoped value with the
// incoming state and delegating to the inner context.
func (e StateEmbed[R, S, A, M]) Embed(m Scoped[R, A]) Stateful[S, M] {
	return func(s S) M {
		return e.Inner.Embed(Map(m, func(a A) Pair[A, S] {
			return Pair[A, S]{Fst: a, Snd: s}
		}))
	}
}

// LiftState embeds a scoped computation into the state layer over the
// scoped base.
func LiftState[R, S, A any](m Scoped[R, A]) Stateful[S, Scoped[R, Pair[A, S]]] {
	return StateEmbed[R, S, A, Scoped[R, Pair[A, S]]]{Inner: Base[R, Pair[A, S]]{}}.Embed(m)
}

// PureState lifts a plain value into the state layer over the base.
func PureState[R, S, A any](a A) Stateful[S, Scoped[R, Pair[A, S]]] {
	return func(s S) Scoped[R, Pair[A, S]] {
		return Return[R](Pair[A, S]{Fst: a, Snd: s})
	}
}

// GetState reads the current state.
func GetState[R, S any]() Stateful[S, Scoped[R, Pair[S, S]]] {
	return func(s S) Scoped[R, Pair[S, S]] {
		return Return[R](Pair[S, S]{Fst: s, Snd: s})
	}
}

// PutState replaces the current state.
func PutState[R, S any](s S) Stateful[S, Scoped[R, Pair[struct{}, S]]] {
	return func(S) Scoped[R, Pair[struct{}, S]] {
		return Return[R](Pair[struct{}, S]{Snd: s})
	}
}

// ModifyState applies f to the state and yields the new state.
func ModifyState[R, S any](f func(S) S) Stateful[S, Scoped[R, Pair[S, S]]] {
	return func(s S) Scoped[R, Pair[S, S]] {
		next := f(s)
		return Return[R](Pair[S, S]{Fst: next, Snd: next})
	}
}

// BindState sequences at the state layer over the base, threading the
// state from m into f's computation.
func BindState[R, S, A, B any](m Stateful[S, Scoped[R, Pair[A, S]]], f func(A) Stateful[S, Scoped[R, Pair[B, S]]]) Stateful[S, Scoped[R, Pair[B, S]]] {
	return func(s S) Scoped[R, Pair[B, S]] {
		return Bind(m(s), func(p Pair[A, S]) Scoped[R, Pair[B, S]] {
			return f(p.Fst)(p.Snd)
		})
	}
}

// RunState executes a state-layer computation over the base with an
// initial state, against a continuation observing value and final state.
func RunState[R, S, A any](initial S, m Stateful[S, Scoped[R, Pair[A, S]]], use func(Pair[A, S]) R) R {
	return m(initial)(use)
}

// EvalState is RunState observing only the value.
func EvalState[R, S, A any](initial S, m Stateful[S, Scoped[R, Pair[A, S]]], use func(A) R) R {
	return m(initial)(func(p Pair[A, S]) R {
		return use(p.Fst)
	})
}

// ExecState is RunState observing only the final state.
func ExecState[R, S, A any](initial S, m Stateful[S, Scoped[R, Pair[A, S]]], use func(S) R) R {
	return m(initial)(func(p Pair[A, S]) R {
		return use(p.Snd)
	})
}
