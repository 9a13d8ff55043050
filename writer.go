// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Log accumulation layer.
// Logged[M] wraps an inner context whose value type is Pair[A, []W]: the
// computed value together with the output accumulated so far. Sequencing
// concatenates outputs in execution order.

// Logged is the log layer over an inner context M.
type Logged[M any] struct{ Run M }

// LogEmbed derives the embedding capability at the log layer from the
// inner context's capability. The embedded scope contributes no output.
type LogEmbed[R, W, A, M any] struct {
	Inner Embedder[R, Pair[A, []W], M]
}

// Embed implements Embedder by pairing the scoped value with empty
// output and delegating to the inner context.
func (e LogEmbed[R, W, A, M]) Embed(m Scoped[R, A]) Logged[M] {
	return Logged[M]{Run: e.Inner.Embed(Map(m, func(a A) Pair[A, []W] {
		return Pair[A, []W]{Fst: a}
	}))}
}

// LiftLog embeds a scoped computation into the log layer over the scoped
// base.
func LiftLog[R, W, A any](m Scoped[R, A]) Logged[Scoped[R, Pair[A, []W]]] {
	return LogEmbed[R, W, A, Scoped[R, Pair[A, []W]]]{Inner: Base[R, Pair[A, []W]]{}}.Embed(m)
}

// PureLog lifts a plain value into the log layer over the base.
func PureLog[R, W, A any](a A) Logged[Scoped[R, Pair[A, []W]]] {
	return Logged[Scoped[R, Pair[A, []W]]]{Run: Return[R](Pair[A, []W]{Fst: a})}
}

// TellLog appends one output entry.
func TellLog[R, W any](w W) Logged[Scoped[R, Pair[struct{}, []W]]] {
	return Logged[Scoped[R, Pair[struct{}, []W]]]{Run: Return[R](Pair[struct{}, []W]{Snd: []W{w}})}
}

// BindLog sequences at the log layer over the base, concatenating the
// outputs of m and f's computation in that order.
func BindLog[R, W, A, B any](m Logged[Scoped[R, Pair[A, []W]]], f func(A) Logged[Scoped[R, Pair[B, []W]]]) Logged[Scoped[R, Pair[B, []W]]] {
	return Logged[Scoped[R, Pair[B, []W]]]{Run: Bind(m.Run, func(p Pair[A, []W]) Scoped[R, Pair[B, []W]] {
		return Map(f(p.Fst).Run, func(q Pair[B, []W]) Pair[B, []W] {
			// Full-capacity slice to keep the append from aliasing p's output.
			out := append(p.Snd[:len(p.Snd):len(p.Snd)], q.Snd...)
			return Pair[B, []W]{Fst: q.Fst, Snd: out}
		})
	})}
}

// RunLog executes a log-layer computation over the base against a
// continuation observing value and accumulated output.
func RunLog[R, W, A any](m Logged[Scoped[R, Pair[A, []W]]], use func(Pair[A, []W]) R) R {
	return m.Run(use)
}

// ExecLog is RunLog observing only the accumulated output.
func ExecLog[R, W, A any](m Logged[Scoped[R, Pair[A, []W]]], use func([]W) R) R {
	return m.Run(func(p Pair[A, []W]) R {
		return use(p.Snd)
	})
}
