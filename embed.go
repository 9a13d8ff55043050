// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// Embedding capability for layered computation contexts.
//
// A context built by stacking effect layers (optional failure, error with
// payload, state threading, log accumulation, ambient environment,
// naming) over the scoped base can embed a scoped computation directly,
// discharging its acquire/release at the correct point of the combined
// context's execution.
//
// Each layer provides a derived Embedder that delegates to the inner
// context's Embedder, so instances compose through arbitrarily deep,
// arbitrarily ordered stacks without bespoke code per combination. Go
// cannot abstract over the inner context's own map operation, so every
// derived instance injects with the scoped base's [Map] before
// delegating; the capability laws make the two formulations equal.
//
// Laws, for every instance e with context operations pure and bind:
//
//	e.Embed(Return(x))  ≡ pure(x)
//	e.Embed(Bind(m, f)) ≡ bind(e.Embed(m), func(x) { return e.Embed(f(x)) })
//
// The second law is what guarantees acquire/release timing is preserved
// no matter which layer observes the embedded value.

// Embedder is the capability to embed a scoped computation into a richer
// context C. The value type A is fixed per instantiation; this is the
// generic-interface approximation of an answer-type-polymorphic
// capability.
type Embedder[R, A, C any] interface {
	Embed(m Scoped[R, A]) C
}

// Base is the identity instance: the scoped base embeds into itself.
type Base[R, A any] struct{}

// Embed implements Embedder with the identity embedding.
func (Base[R, A]) Embed(m Scoped[R, A]) Scoped[R, A] { return m }
