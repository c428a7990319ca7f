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

package main

import (
	"strings"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/instances"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/option"
	"github.com/wdamron/prelude/tuple"
)

// suite is one subject of the catalogue: a law set bound to an instance.
type suite struct {
	name string
	run  func(c *laws.Checker) laws.Report
}

func suiteOf[C, A any](name string, set laws.LawSet[C, A], inst C, eq prelude.Equal[A], gen laws.Gen[A]) suite {
	return suite{name: name, run: func(c *laws.Checker) laws.Report {
		return laws.Check(c, name, set, inst, eq, gen)
	}}
}

func catalog() []suite {
	eqInt, eqString, eqBool := prelude.DefaultEqual[int](), prelude.DefaultEqual[string](), prelude.DefaultEqual[bool]()
	eqInts := instances.SliceDeriveEqual[int]().Derive(eqInt)
	eqOptInt := instances.OptionDeriveEqual[int]().Derive(eqInt)
	ints := laws.SliceOf(laws.Int(), 6)
	optInts := laws.OneOf(laws.Const(option.None[int]()), laws.Map(laws.Int(), option.Some[int]))
	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }

	return []suite{
		suiteOf("Sum[int]", laws.IdentityLaws[int](), prelude.Sum[int](), eqInt, laws.Int()),
		suiteOf("Sum[int64]", laws.IdentityLaws[int64](), prelude.Sum[int64](), prelude.DefaultEqual[int64](),
			laws.Map(laws.Int(), func(n int) int64 { return int64(n) })),
		suiteOf("Product[int]", laws.IdentityLaws[int](), prelude.Product[int](), eqInt, laws.IntRange(-50, 50)),
		suiteOf("Concat", laws.IdentityLaws[string](), prelude.Concat(), eqString, laws.String()),
		suiteOf("SliceConcat[int]", laws.IdentityLaws[[]int](), prelude.SliceConcat[int](), eqInts, ints),
		suiteOf("Or", laws.IdentityLaws[bool](), prelude.Or(), eqBool, laws.Bool()),
		suiteOf("And", laws.IdentityLaws[bool](), prelude.And(), eqBool, laws.Bool()),
		suiteOf("Max[int]", laws.AssociativeLaws[int](), prelude.Max[int](), eqInt, laws.Int()),
		suiteOf("Min[string]", laws.AssociativeLaws[string](), prelude.Min[string](), eqString, laws.String()),
		suiteOf("First[int]", laws.AssociativeLaws[int](), prelude.First[int](), eqInt, laws.Int()),
		suiteOf("Last[int]", laws.AssociativeLaws[int](), prelude.Last[int](), eqInt, laws.Int()),

		suiteOf("(Sum[int], Concat)", laws.IdentityLaws[tuple.Tuple2[int, string]](),
			prelude.IdentityTuple2(prelude.Sum[int](), prelude.Concat()),
			prelude.EqualTuple2(eqInt, eqString),
			laws.Tuple2Of(laws.Int(), laws.String())),
		suiteOf("(Sum[int], Product[int], Or)", laws.IdentityLaws[tuple.Tuple3[int, int, bool]](),
			prelude.IdentityTuple3(prelude.Sum[int](), prelude.Product[int](), prelude.Or()),
			prelude.EqualTuple3(eqInt, eqInt, eqBool),
			laws.Tuple3Of(laws.Int(), laws.IntRange(-50, 50), laws.Bool())),
		suiteOf("(Max[int], Min[string])", laws.AssociativeLaws[tuple.Tuple2[int, string]](),
			prelude.AssociativeTuple2(prelude.Max[int](), prelude.Min[string]()),
			prelude.EqualTuple2(eqInt, eqString),
			laws.Tuple2Of(laws.Int(), laws.String())),

		suiteOf("Equal[int]", laws.EqualLaws[int](), eqInt, eqInt, laws.IntRange(-3, 3)),
		suiteOf("Equal[string] (case-folded)", laws.EqualLaws[string](),
			prelude.MakeEqual(strings.EqualFold), eqString, laws.OneOf(laws.Const("a"), laws.Const("A"), laws.Const("b"))),
		suiteOf("Equal[[]int]", laws.EqualLaws[[]int](), eqInts, eqInts, laws.SliceOf(laws.IntRange(0, 1), 2)),
		suiteOf("Equal[Option[int]]", laws.EqualLaws[option.Option[int]](), eqOptInt, eqOptInt,
			laws.OneOf(laws.Const(option.None[int]()), laws.Map(laws.IntRange(0, 1), option.Some[int]))),

		suiteOf("Covariant[[]int]", laws.CovariantLaws[int, []int](inc, double),
			instances.SliceCovariant[int, int](), eqInts, ints),
		suiteOf("Covariant[Option[int]]", laws.CovariantLaws[int, option.Option[int]](inc, double),
			instances.OptionCovariant[int, int](), eqOptInt, optInts),
	}
}
