// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped_test

import (
	"testing"

	"code.hybscloud.com/scoped"
)

func TestReturnWith(t *testing.T) {
	got := scoped.With(scoped.Return[int](42), func(x int) int { return x })
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestReturnWithString(t *testing.T) {
	got := scoped.With(scoped.Return[string]("hello"), func(s string) string { return s })
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestWithChoosesAnswerType(t *testing.T) {
	m := scoped.Return[string, int](42)
	got := scoped.With(m, func(x int) string {
		return "value"
	})
	if got != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
}

func TestWrap(t *testing.T) {
	m := scoped.Wrap(func(use func(int) int) int {
		return use(42) + 1
	})
	got := scoped.With(m, func(x int) int { return x })
	if got != 43 {
		t.Fatalf("got %d, want 43", got)
	}
}

func TestBindSimple(t *testing.T) {
	m := scoped.Return[int](10)
	n := scoped.Bind(m, func(x int) scoped.Scoped[int, int] {
		return scoped.Return[int](x * 2)
	})
	got := scoped.With(n, func(x int) int { return x })
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindLeftIdentity(t *testing.T) {
	// Bind(Return(a), f) ≡ f(a)
	a := 7
	f := func(x int) scoped.Scoped[int, int] {
		return scoped.Return[int](x * 3)
	}

	id := func(x int) int { return x }
	left := scoped.With(scoped.Bind(scoped.Return[int](a), f), id)
	right := scoped.With(f(a), id)

	if left != right {
		t.Fatalf("left identity failed: %d != %d", left, right)
	}
}

func TestBindRightIdentity(t *testing.T) {
	// Bind(m, Return) ≡ m
	m := scoped.Return[int](42)

	id := func(x int) int { return x }
	left := scoped.With(scoped.Bind(m, func(x int) scoped.Scoped[int, int] {
		return scoped.Return[int](x)
	}), id)
	right := scoped.With(m, id)

	if left != right {
		t.Fatalf("right identity failed: %d != %d", left, right)
	}
}

func TestBindAssociativity(t *testing.T) {
	// Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
	m := scoped.Return[int](2)
	f := func(x int) scoped.Scoped[int, int] {
		return scoped.Return[int](x + 3)
	}
	g := func(x int) scoped.Scoped[int, int] {
		return scoped.Return[int](x * 2)
	}

	id := func(x int) int { return x }
	left := scoped.With(scoped.Bind(scoped.Bind(m, f), g), id)
	right := scoped.With(scoped.Bind(m, func(x int) scoped.Scoped[int, int] {
		return scoped.Bind(f(x), g)
	}), id)

	if left != right {
		t.Fatalf("associativity failed: %d != %d", left, right)
	}
}

func TestBindAssociativityWithTypeChange(t *testing.T) {
	m := scoped.Return[string](42)
	f := func(x int) scoped.Scoped[string, string] {
		return scoped.Return[string]("value")
	}
	g := func(s string) scoped.Scoped[string, string] {
		return scoped.Return[string](s + "!")
	}

	id := func(s string) string { return s }
	left := scoped.With(scoped.Bind(scoped.Bind(m, f), g), id)
	right := scoped.With(scoped.Bind(m, func(x int) scoped.Scoped[string, string] {
		return scoped.Bind(f(x), g)
	}), id)

	if left != right {
		t.Fatalf("associativity (type change) failed: %q != %q", left, right)
	}
}

func TestMap(t *testing.T) {
	m := scoped.Return[int](10)
	n := scoped.Map(m, func(x int) int {
		return x * 3
	})
	got := scoped.With(n, func(x int) int { return x })
	if got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestThen(t *testing.T) {
	m := scoped.Return[int]("discarded")
	n := scoped.Then(m, scoped.Return[int](5))
	got := scoped.With(n, func(x int) int { return x })
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestConstructionIsInert(t *testing.T) {
	var log []string
	m := traced(&log, "1")
	n := scoped.Bind(m, func(string) scoped.Scoped[error, string] {
		return traced(&log, "2")
	})
	_ = scoped.Map(n, func(s string) int { return len(s) })

	if len(log) != 0 {
		t.Fatalf("construction performed acquisitions: %v", log)
	}
}

func TestRepeatedExecutionIndependentCycles(t *testing.T) {
	var log []string
	m := traced(&log, "1")

	for range 2 {
		if err := scoped.With(m, func(string) error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []string{"acquire 1", "release 1", "acquire 1", "release 1"}
	assertLog(t, log, want)
}
