// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

// discard is the do-nothing continuation for Run.
// Named function produces a static function value, avoiding the heap
// allocation that anonymous closures incur.
func discard(struct{}) struct{} { return struct{}{} }

// nilErr is the do-nothing continuation for RunErr.
func nilErr(struct{}) error { return nil }

// With executes a scoped computation against an explicit continuation.
// This is the fundamental evaluator: every other entry point and
// combinator is defined in terms of it. The resource is valid exactly for
// the dynamic extent of use; release happens before With returns or
// before a failure propagates past it.
func With[R, A any](m Scoped[R, A], use func(A) R) R {
	return m(use)
}

// Run executes a scoped computation whose value carries no information,
// with a continuation that performs no further action. It is the terminal
// entry point for "run this composed resource scope to completion": it
// returns only once every resource acquired during execution has been
// released.
func Run(m Scoped[struct{}, struct{}]) {
	m(discard)
}

// RunErr is Run for scopes whose answer type is error, the usual shape
// when the underlying primitives are [OpenClose]-style Go brackets.
// The continuation reports no failure of its own; any non-nil result
// comes from acquisition or release.
func RunErr(m Scoped[error, struct{}]) error {
	return m(nilErr)
}
