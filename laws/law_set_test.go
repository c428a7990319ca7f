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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/laws/lawtest"
)

type intLaws = laws.LawSet[prelude.Identity[int], int]

func namesEqual() prelude.Equal[intLaws] {
	return prelude.MakeEqual(func(l, r intLaws) bool { return slices.Equal(l.Names(), r.Names()) })
}

func genLawSet() laws.Gen[intLaws] {
	pool := []laws.Gen[laws.Law[prelude.Identity[int], int]]{
		laws.Const(laws.LeftIdentity[int]()),
		laws.Const(laws.RightIdentity[int]()),
		laws.Const(laws.Refine(laws.Associativity[int](), func(m prelude.Identity[int]) prelude.Associative[int] { return m })),
	}
	return laws.Map(laws.SliceOf(laws.OneOf(pool...), 4), func(ls []laws.Law[prelude.Identity[int], int]) intLaws {
		return laws.Of(ls...)
	})
}

func TestLawSetCombineOrder(t *testing.T) {
	left := laws.Of(laws.LeftIdentity[int]())
	right := laws.Of(laws.RightIdentity[int]())

	combined := left.Combine(right)
	assert.Equal(t, []string{"leftIdentity", "rightIdentity"}, combined.Names())
	assert.Equal(t, 1, left.Len(), "combine must not modify its operands")
	assert.Equal(t, 1, right.Len())
}

func TestLawSetEmpty(t *testing.T) {
	var zero intLaws
	assert.True(t, zero.IsEmpty())
	assert.True(t, laws.Empty[prelude.Identity[int], int]().Holds(prelude.MakeIdentity(7, func(l, r int) int { return l - r }), prelude.DefaultEqual[int](), nil))

	set := laws.IdentityLaws[int]()
	assert.Equal(t, set.Names(), zero.Combine(set).Names())
	assert.Equal(t, set.Names(), set.Combine(zero).Names())
}

// Law sets under Combine obey the same laws they describe.
func TestLawSetMonoid(t *testing.T) {
	lawtest.AssertLaws(t, "LawSet", laws.IdentityLaws[intLaws](), laws.Monoid[prelude.Identity[int], int](), namesEqual(), genLawSet())
}

func TestLawSetHolds(t *testing.T) {
	set := laws.IdentityLaws[int]()
	sum := prelude.Sum[int]()
	eq := prelude.DefaultEqual[int]()

	assert.True(t, set.Holds(sum, eq, []int{1, 2, 3}))
	assert.Equal(t, 3, set.MaxArity())

	broken := prelude.MakeIdentity(1, func(l, r int) int { return l + r })
	assert.False(t, set.Holds(broken, eq, []int{1, 2, 3}))

	results := set.Check(broken, eq, []int{5, 2, 3})
	require.Len(t, results, 3)
	assert.False(t, results[0].Passed)
	assert.Equal(t, "leftIdentity", results[0].Law)
	assert.Equal(t, "6 != 5", results[0].Reason)
	assert.Equal(t, []any{5}, results[0].Samples)
	assert.True(t, results[2].Passed, "addition from any start is still associative")
}

func TestLawRunTooFewSamples(t *testing.T) {
	res := laws.Associativity[int]().Run(prelude.Sum[int](), prelude.DefaultEqual[int](), []int{1})
	assert.False(t, res.Passed)
	assert.Equal(t, "needs 3 samples, got 1", res.Reason)
}

func TestLawSetWithAndGet(t *testing.T) {
	set := laws.Empty[prelude.Identity[int], int]().With(laws.RightIdentity[int]())
	require.Equal(t, 1, set.Len())
	assert.Equal(t, "rightIdentity", set.Get(0).Name)
	assert.Equal(t, 1, set.Get(0).Arity)
}

func TestCustomLaw(t *testing.T) {
	commutativity := laws.New("commutativity", 2, func(s prelude.Associative[int], eq prelude.Equal[int], v []int) (bool, string) {
		return eq.Equal(s.Combine(v[0], v[1]), s.Combine(v[1], v[0])), "a+b != b+a"
	})
	set := laws.AssociativeLaws[int]().With(commutativity)

	report := laws.Check(laws.NewChecker(laws.DefaultConfig(), nil), "first", set, prelude.First[int](), prelude.DefaultEqual[int](), laws.Int())
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Passed)
	assert.False(t, report.Results[1].Passed)
	assert.False(t, report.Passed())
}

func TestGenDeterministic(t *testing.T) {
	g := laws.SliceOf(laws.String(), 5)
	a := g(rand.New(rand.NewPCG(1, 2)))
	b := g(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)

	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		n := laws.IntRange(-2, 2)(r)
		assert.GreaterOrEqual(t, n, -2)
		assert.LessOrEqual(t, n, 2)
	}
}
