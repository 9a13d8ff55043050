// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Naming layer.
// Named[M] adds no semantics of its own; it marks a position in a layer
// stack (for distinguishing otherwise identical contexts) and delegates
// everything to the inner context.

// Named is the identity layer over an inner context M.
type Named[M any] struct{ Run M }

// NameEmbed derives the embedding capability at the naming layer from
// the inner context's capability.
type NameEmbed[R, A, M any] struct {
	Inner Embedder[R, A, M]
}

// Embed implements Embedder by delegating unchanged.
func (e NameEmbed[R, A, M]) Embed(m Scoped[R, A]) Named[M] {
	return Named[M]{Run: e.Inner.Embed(m)}
}

// LiftNamed embeds a scoped computation into the naming layer over the
// scoped base.
func LiftNamed[R, A any](m Scoped[R, A]) Named[Scoped[R, A]] {
	return Named[Scoped[R, A]]{Run: m}
}

// BindNamed sequences at the naming layer over the base.
func BindNamed[R, A, B any](m Named[Scoped[R, A]], f func(A) Named[Scoped[R, B]]) Named[Scoped[R, B]] {
	return Named[Scoped[R, B]]{Run: Bind(m.Run, func(a A) Scoped[R, B] {
		return f(a).Run
	})}
}

// RunNamed executes a naming-layer computation over the base.
func RunNamed[R, A any](m Named[Scoped[R, A]], use func(A) R) R {
	return m.Run(use)
}
