// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scoped provides composable acquire/use/release resource scoping
// in Go.
//
// The core type [Scoped] represents a computation that acquires a
// resource, passes it to a continuation, and guarantees release before
// the result — or a failure — propagates. Composing scopes flattens the
// callback nesting that bracketed acquisition otherwise forces: several
// resources can be obtained in sequence through one continuation, with
// each underlying primitive's exception safety preserved and release
// order guaranteed to be the reverse of acquisition order.
//
// # Design Philosophy
//
// scoped provides:
//   - One opaque value type whose resource cannot be observed without
//     supplying a continuation, so no resource escapes its scope
//   - Combinators that change only how values combine, never how many
//     acquire/release pairs run or when
//   - Layered effect contexts (optional failure, error payload, state,
//     log, ambient environment) that embed scopes through one capability
//     interface
//
// # Core Type
//
// Scoped[R, A] is a function accepting a continuation func(A) R and
// producing an R. The answer type R is a type parameter: a value of type
// A can only be reached by supplying a continuation, which is the
// mechanism that prevents resource escape. Building a Scoped value
// performs no acquisition; only execution does.
//
// # Core Operations
//
// Construction:
//
//   - [Wrap]: Adopt an acquire-with-callback primitive
//   - [Return]: Lift a pure value, with no acquisition semantics
//   - [Enclose]: Adopt a bracketing side effect with no usable value
//     (e.g. "run this block with a lock held")
//   - [OpenClose], [Closing]: Adopt Go open/close function pairs, release
//     via defer so it also runs on panic paths
//
// Combination:
//
//   - [Bind]: Sequence; the second acquisition nests inside the first,
//     release order is LIFO
//   - [Map]: Transform the value; release timing unchanged
//   - [Then]: Sequence, discarding the first value
//   - [Apply], [Map2], [Map3], [Zip]: Combine independent scopes;
//     acquisitions nest left to right
//
// Execution:
//
//   - [With]: Run against an explicit continuation — the fundamental
//     evaluator
//   - [Run]: Discharge a unit-valued scope; returns only after every
//     release has run
//   - [RunErr]: The same for error-answer scopes
//
// # Algebraic Lifting
//
// If A forms a monoid, so does Scoped[R, A]; if A is numeric, arithmetic
// lifts pointwise. Both are derived from [Map2]/[Map], so they inherit
// the underlying laws. Structure is passed as an explicit [Monoid]
// dictionary.
//
//   - [Monoid], [LiftMonoid], [Fold]
//   - [Add], [Sub], [Mul], [Neg], [Sum], [Product] over [Number]
//
// # Layered Contexts
//
// Computation contexts stack effect layers over the scoped base. Each
// layer is a value-level wrapper generic over its inner context:
//
//   - [Opt]: Optional failure over [Option] values
//   - [Fail]: Error with payload over [Either] values
//   - [Stateful]: State threading over [Pair] of value and state
//   - [Logged]: Log accumulation over [Pair] of value and output
//   - [Ambient]: Read-only environment
//   - [Named]: Naming layer with no semantics of its own
//
// The [Embedder] capability embeds a Scoped value into any such stack:
// [Base] is the identity instance, and [OptEmbed], [FailEmbed],
// [StateEmbed], [LogEmbed], [EnvEmbed], [NameEmbed] each delegate to the
// inner context's instance, so the capability composes through stacks of
// any depth and order. Embedding preserves pure values and distributes
// over sequencing, so acquire/release timing is unchanged no matter
// which layer observes the embedded value.
//
// Single-layer stacks over the base are directly usable through each
// layer's Lift/Pure/Bind/Run families (e.g. [LiftOpt], [BindState],
// [RunLog]).
//
// # Failure Transparency
//
// The package performs no error classification of its own. Acquisition
// failure propagates with no release owed; a failure after acquisition
// propagates only after every acquired resource is released, innermost
// first. Both error-value propagation ([OpenClose], [RunErr]) and panic
// propagation are preserved unchanged.
//
// # Execution Model
//
// Execution is nested continuation invocation — a call stack, nothing
// more. There is no scheduler, no parallelism, no pooling, and no
// cancellation beyond failure propagation. Resource N stays held for the
// entire dynamic extent of everything after it. A loop that re-executes
// a scope inside itself nests without bound; acquire once with [With]
// and loop over the raw resource instead.
//
// # Example
//
//	src := scoped.Closing(func() (*os.File, error) { return os.Open("in.txt") })
//	dst := scoped.Closing(func() (*os.File, error) { return os.Create("out.txt") })
//
//	err := scoped.With(scoped.Zip(src, dst), func(p scoped.Pair[*os.File, *os.File]) error {
//		_, err := io.Copy(p.Snd, p.Fst)
//		return err
//	})
//	// out.txt is closed first, then in.txt, before err is observed.
package scoped
