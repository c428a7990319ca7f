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

package instances_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/instances"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/laws/lawtest"
	"github.com/wdamron/prelude/option"
	"github.com/wdamron/prelude/tuple"
	"github.com/wdamron/prelude/typeclass"
)

func TestSliceApplicativeDelegates(t *testing.T) {
	covariant := instances.SliceCovariant[int, string]()
	app := instances.SliceApplicative[int, string]()

	in := []int{1, 20, 300}
	assert.Equal(t, covariant.Map(strconv.Itoa)(in), app.Map(strconv.Itoa)(in))
	assert.Equal(t, []string{"1", "20", "300"}, app.Map(strconv.Itoa)(in))
	assert.Nil(t, app.Map(strconv.Itoa)(nil))
}

func TestSliceBoth(t *testing.T) {
	app := instances.SliceApplicative[int, string]()

	got := app.Both([]int{1, 2}, []string{"a", "b"})
	assert.Equal(t, []tuple.Tuple2[int, string]{
		tuple.Of2(1, "a"), tuple.Of2(1, "b"),
		tuple.Of2(2, "a"), tuple.Of2(2, "b"),
	}, got)
	assert.Empty(t, app.Both(nil, []string{"a"}))
	assert.Equal(t, []tuple.Unit{{}}, app.Any())
}

func TestSliceDeriveEqual(t *testing.T) {
	eq := instances.SliceApplicative[int, string]().Derive(prelude.DefaultEqual[int]())

	assert.True(t, eq.Equal([]int{1, 2}, []int{1, 2}))
	assert.True(t, eq.Equal(nil, []int{}))
	assert.False(t, eq.Equal([]int{1, 2}, []int{2, 1}))
	assert.False(t, eq.Equal([]int{1}, []int{1, 1}))
}

func TestSliceLaws(t *testing.T) {
	eq := instances.SliceDeriveEqual[int]().Derive(prelude.DefaultEqual[int]())
	inc := func(x int) int { return x + 1 }
	neg := func(x int) int { return -x }

	lawtest.AssertLaws(t, "SliceCovariant", laws.CovariantLaws[int, []int](inc, neg), instances.SliceCovariant[int, int](), eq, laws.SliceOf(laws.Int(), 8))
	lawtest.AssertLaws(t, "SliceDeriveEqual", laws.EqualLaws[[]int](), eq, eq, laws.SliceOf(laws.IntRange(0, 1), 2))
}

func TestOptionApplicative(t *testing.T) {
	app := instances.OptionApplicative[int, string]()

	assert.Equal(t, option.Some("7"), app.Map(strconv.Itoa)(option.Some(7)))
	assert.Equal(t, option.None[string](), app.Map(strconv.Itoa)(option.None[int]()))

	assert.Equal(t, option.Some(tuple.Of2(1, "a")), app.Both(option.Some(1), option.Some("a")))
	assert.True(t, app.Both(option.None[int](), option.Some("a")).IsNone())
	assert.True(t, app.Both(option.Some(1), option.None[string]()).IsNone())
	assert.Equal(t, option.Some(tuple.Unit{}), app.Any())

	eq := app.Derive(prelude.DefaultEqual[int]())
	assert.True(t, eq.Equal(option.None[int](), option.None[int]()))
	assert.True(t, eq.Equal(option.Some(1), option.Some(1)))
	assert.False(t, eq.Equal(option.Some(1), option.Some(2)))
	assert.False(t, eq.Equal(option.Some(1), option.None[int]()))
}

func TestOptionLaws(t *testing.T) {
	eq := instances.OptionDeriveEqual[int]().Derive(prelude.DefaultEqual[int]())
	gen := laws.OneOf(laws.Const(option.None[int]()), laws.Map(laws.Int(), option.Some[int]))
	double := func(x int) int { return x * 2 }
	dec := func(x int) int { return x - 1 }

	lawtest.AssertLaws(t, "OptionCovariant", laws.CovariantLaws[int, option.Option[int]](double, dec), instances.OptionCovariant[int, int](), eq, gen)
	lawtest.AssertLaws(t, "OptionDeriveEqual", laws.EqualLaws[option.Option[int]](), eq, eq, laws.OneOf(laws.Const(option.None[int]()), laws.Map(laws.IntRange(0, 1), option.Some[int])))
}

func TestSummonApplicativeAssemblesFromRegistry(t *testing.T) {
	r := instances.RegisterSlice[int, string](typeclass.NewRegistry())
	r = instances.RegisterOption[int, string](r)

	app, err := prelude.SummonApplicative[int, string, []int, []string, []tuple.Tuple2[int, string], []tuple.Unit](r)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, app.Map(strconv.Itoa)([]int{5}))
	assert.Equal(t, []tuple.Unit{{}}, app.Any())

	opt, err := prelude.SummonApplicative[int, string, option.Option[int], option.Option[string], option.Option[tuple.Tuple2[int, string]], option.Option[tuple.Unit]](r)
	require.NoError(t, err)
	assert.Equal(t, option.Some("5"), opt.Map(strconv.Itoa)(option.Some(5)))

	_, err = prelude.SummonApplicative[string, int, []string, []int, []tuple.Tuple2[string, int], []tuple.Unit](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrNoInstance))
}

func TestSummonApplicativeMissingPart(t *testing.T) {
	r := prelude.ProvideCovariant(typeclass.NewRegistry(), instances.SliceCovariant[int, int]())
	r = prelude.ProvideIdentityBoth(r, instances.SliceIdentityBoth[int, int]())

	_, err := prelude.SummonApplicative[int, int, []int, []int, []tuple.Tuple2[int, int], []tuple.Unit](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrNoInstance))
	assert.Contains(t, err.Error(), "DeriveEqual")
}

func TestProvidedApplicativeSatisfiesCovariant(t *testing.T) {
	r := prelude.ProvideApplicative(typeclass.NewRegistry(), instances.SliceApplicative[int, string]())

	covariant, err := prelude.SummonCovariant[int, string, []int, []string](r)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, covariant.Map(strconv.Itoa)([]int{1}))

	app, err := prelude.SummonApplicative[int, string, []int, []string, []tuple.Tuple2[int, string], []tuple.Unit](r)
	require.NoError(t, err)
	assert.Equal(t, []tuple.Unit{{}}, app.Any())
}
