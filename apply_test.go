// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scoped_test

import (
	"testing"

	"code.hybscloud.com/scoped"
)

func TestApply(t *testing.T) {
	mf := scoped.Return[int](func(x int) int { return x * 2 })
	ma := scoped.Return[int](21)
	got := scoped.With(scoped.Apply(mf, ma), func(x int) int { return x })
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestApplyNestingOrder(t *testing.T) {
	var log []string
	mf := scoped.Map(traced(&log, "f"), func(string) func(int) int {
		return func(x int) int { return x + 1 }
	})
	ma := tracedInt(&log, "a", 41)

	err := scoped.With(scoped.Apply(mf, ma), func(x int) error {
		if x != 42 {
			t.Fatalf("got %d, want 42", x)
		}
		log = append(log, "use")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertLog(t, log, []string{"acquire f", "acquire a", "use", "release a", "release f"})
}

func TestMap2CombinesIndependentResources(t *testing.T) {
	var log []string
	three := tracedInt(&log, "3", 3)
	four := tracedInt(&log, "4", 4)

	sum := scoped.Map2(three, four, func(a, b int) int { return a + b })
	err := scoped.With(sum, func(n int) error {
		if n != 7 {
			t.Fatalf("got %d, want 7", n)
		}
		log = append(log, "use 7")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertLog(t, log, []string{"acquire 3", "acquire 4", "use 7", "release 4", "release 3"})
}

func TestMap3(t *testing.T) {
	m := scoped.Map3(
		scoped.Return[int](1),
		scoped.Return[int](2),
		scoped.Return[int](3),
		func(a, b, c int) int { return a*100 + b*10 + c },
	)
	got := scoped.With(m, func(x int) int { return x })
	if got != 123 {
		t.Fatalf("got %d, want 123", got)
	}
}

func TestZip(t *testing.T) {
	var log []string
	p := scoped.Zip(traced(&log, "l"), traced(&log, "r"))

	err := scoped.With(p, func(pair scoped.Pair[string, string]) error {
		if pair.Fst != "l" || pair.Snd != "r" {
			t.Fatalf("got (%q, %q), want (l, r)", pair.Fst, pair.Snd)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertLog(t, log, []string{"acquire l", "acquire r", "release r", "release l"})
}

func TestApplyIndependentCycles(t *testing.T) {
	// The same underlying primitive on both sides of a combination is two
	// independent acquire/release cycles; nothing is deduplicated.
	var log []string
	m := tracedInt(&log, "x", 1)

	got := 0
	err := scoped.With(scoped.Map2(m, m, func(a, b int) int { return a + b }), func(n int) error {
		got = n
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	assertLog(t, log, []string{"acquire x", "acquire x", "release x", "release x"})
}
