// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped

import "io"

// Adapters from Go's open/close idiom to scoped computations.
// These are the only concrete acquisition shapes the package knows about;
// everything else arrives through Wrap as an opaque bracket.

// OpenClose wraps an open/close function pair as a scoped computation
// with answer type error.
//
// Acquisition failure short-circuits: release is not called and the
// open error is returned unchanged. After a successful open, release
// runs via defer, so it runs exactly once on every path out of the
// continuation, including panics. A use-phase error takes precedence
// over a release error; the release error is reported only when use
// succeeded.
func OpenClose[A any](open func() (A, error), release func(A) error) Scoped[error, A] {
	return func(use func(A) error) (err error) {
		a, err := open()
		if err != nil {
			return err
		}
		defer func() {
			rerr := release(a)
			if err == nil {
				err = rerr
			}
		}()
		return use(a)
	}
}

// Closing wraps an open function whose resource closes itself.
// Equivalent to OpenClose(open, A.Close).
func Closing[A io.Closer](open func() (A, error)) Scoped[error, A] {
	return OpenClose(open, func(a A) error { return a.Close() })
}
