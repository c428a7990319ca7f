// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package laws_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/laws/lawtest"
)

func TestStandardInstancesObeyIdentityLaws(t *testing.T) {
	lawtest.AssertLaws(t, "Sum[int]", laws.IdentityLaws[int](), prelude.Sum[int](), prelude.DefaultEqual[int](), laws.Int())
	lawtest.AssertLaws(t, "Product[int]", laws.IdentityLaws[int](), prelude.Product[int](), prelude.DefaultEqual[int](), laws.IntRange(-50, 50))
	lawtest.AssertLaws(t, "Concat", laws.IdentityLaws[string](), prelude.Concat(), prelude.DefaultEqual[string](), laws.String())
	lawtest.AssertLaws(t, "Or", laws.IdentityLaws[bool](), prelude.Or(), prelude.DefaultEqual[bool](), laws.Bool())
	lawtest.AssertLaws(t, "And", laws.IdentityLaws[bool](), prelude.And(), prelude.DefaultEqual[bool](), laws.Bool())
}

func TestStandardInstancesObeyAssociativity(t *testing.T) {
	lawtest.AssertLaws(t, "Max[int]", laws.AssociativeLaws[int](), prelude.Max[int](), prelude.DefaultEqual[int](), laws.Int())
	lawtest.AssertLaws(t, "Min[string]", laws.AssociativeLaws[string](), prelude.Min[string](), prelude.DefaultEqual[string](), laws.String())
	lawtest.AssertLaws(t, "First[int]", laws.AssociativeLaws[int](), prelude.First[int](), prelude.DefaultEqual[int](), laws.Int())
	lawtest.AssertLaws(t, "Last[int]", laws.AssociativeLaws[int](), prelude.Last[int](), prelude.DefaultEqual[int](), laws.Int())
}

func TestSubtractionViolatesAssociativity(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	checker := laws.NewChecker(laws.DefaultConfig(), logger)

	minus := prelude.MakeIdentity(0, func(l, r int) int { return l - r })
	report := laws.Check(checker, "minus", laws.IdentityLaws[int](), minus, prelude.DefaultEqual[int](), laws.Int())

	require.Len(t, report.Results, 3)
	assert.False(t, report.Passed())

	byName := map[string]laws.Result{}
	for _, r := range report.Results {
		byName[r.Law] = r
	}
	assert.False(t, byName["leftIdentity"].Passed, "0 - a != a")
	assert.True(t, byName["rightIdentity"].Passed, "a - 0 == a")
	assert.Equal(t, 100, byName["rightIdentity"].Trials)
	assert.False(t, byName["associativity"].Passed)
	assert.Len(t, byName["associativity"].Samples, 3)

	assert.Len(t, report.Failures(), 2)
	assert.Contains(t, logs.String(), "law violated")
	assert.Contains(t, logs.String(), "law held")
	assert.Equal(t, 2, strings.Count(logs.String(), "level=WARN"))
}

func TestCheckIsReproducible(t *testing.T) {
	minus := prelude.MakeAssociative(func(l, r int) int { return l - r })
	run := func() laws.Report {
		return laws.Check(laws.NewChecker(laws.Config{Samples: 50, Seed: 7}, nil), "minus", laws.AssociativeLaws[int](), minus, prelude.DefaultEqual[int](), laws.Int())
	}
	assert.Equal(t, run(), run())
}

func TestNewCheckerRejectsInvalidConfig(t *testing.T) {
	var logs bytes.Buffer
	checker := laws.NewChecker(laws.Config{Samples: 0}, slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Equal(t, laws.DefaultConfig(), checker.Config())
	assert.Contains(t, logs.String(), "using default law checker config")
}

func TestEqualLaws(t *testing.T) {
	lawtest.AssertLaws(t, "DefaultEqual[int]", laws.EqualLaws[int](), prelude.DefaultEqual[int](), prelude.DefaultEqual[int](), laws.IntRange(0, 3))

	caseless := prelude.MakeEqual(strings.EqualFold)
	lawtest.AssertLaws(t, "EqualFold", laws.EqualLaws[string](), caseless, caseless, laws.OneOf(laws.Const("a"), laws.Const("A"), laws.Const("b")))

	less := prelude.MakeEqual(func(l, r int) bool { return l < r })
	report := laws.Check(laws.NewChecker(laws.DefaultConfig(), nil), "less", laws.EqualLaws[int](), less, less, laws.IntRange(0, 3))
	require.Len(t, report.Results, 3)
	assert.False(t, report.Results[0].Passed, "reflexivity")
	assert.False(t, report.Results[1].Passed, "symmetry")
}

func TestCovariantLaws(t *testing.T) {
	var mapSlice prelude.Covariant[int, int, []int, []int] = prelude.CovariantFunc[int, int, []int, []int](func(f func(int) int) func([]int) []int {
		return func(xs []int) []int {
			out := make([]int, len(xs))
			for i, x := range xs {
				out[i] = f(x)
			}
			return out
		}
	})
	eq := prelude.MakeEqual(func(l, r []int) bool {
		if len(l) != len(r) {
			return false
		}
		for i := range l {
			if l[i] != r[i] {
				return false
			}
		}
		return true
	})
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	lawtest.AssertLaws(t, "map", laws.CovariantLaws[int, []int](inc, double), mapSlice, eq, laws.SliceOf(laws.Int(), 6))

	var reversing prelude.Covariant[int, int, []int, []int] = prelude.CovariantFunc[int, int, []int, []int](func(f func(int) int) func([]int) []int {
		return func(xs []int) []int {
			out := make([]int, len(xs))
			for i, x := range xs {
				out[len(xs)-1-i] = f(x)
			}
			return out
		}
	})
	report := laws.Check(laws.NewChecker(laws.DefaultConfig(), nil), "reversing", laws.CovariantLaws[int, []int](inc, double), reversing, eq, laws.SliceOf(laws.Int(), 6))
	assert.False(t, report.Passed())
}
