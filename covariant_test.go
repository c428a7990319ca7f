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

package prelude_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/tuple"
)

type box[A any] struct{ v A }

func boxParts() (prelude.Covariant[int, string, box[int], box[string]], prelude.IdentityBoth[box[int], box[string], box[tuple.Tuple2[int, string]], box[tuple.Unit]], prelude.DeriveEqual[int, box[int]]) {
	var covariant prelude.Covariant[int, string, box[int], box[string]] = prelude.CovariantFunc[int, string, box[int], box[string]](
		func(f func(int) string) func(box[int]) box[string] {
			return func(b box[int]) box[string] { return box[string]{f(b.v)} }
		})
	identityBoth := prelude.MakeIdentityBoth(func(a box[int], b box[string]) box[tuple.Tuple2[int, string]] {
		return box[tuple.Tuple2[int, string]]{tuple.Of2(a.v, b.v)}
	}, box[tuple.Unit]{})
	var deriveEqual prelude.DeriveEqual[int, box[int]] = prelude.DeriveEqualFunc[int, box[int]](
		func(eq prelude.Equal[int]) prelude.Equal[box[int]] {
			return prelude.ContramapEqual(eq, func(b box[int]) int { return b.v })
		})
	return covariant, identityBoth, deriveEqual
}

func TestNewApplicativeDelegates(t *testing.T) {
	covariant, identityBoth, deriveEqual := boxParts()
	app := prelude.NewApplicative(covariant, identityBoth, deriveEqual)

	f := func(n int) string { return strconv.Itoa(n * 2) }
	in := box[int]{21}
	assert.Equal(t, covariant.Map(f)(in), app.Map(f)(in))
	assert.Equal(t, box[string]{"42"}, app.Map(f)(in))

	assert.Equal(t, identityBoth.Both(in, box[string]{"x"}), app.Both(in, box[string]{"x"}))
	assert.Equal(t, identityBoth.Any(), app.Any())

	eq := app.Derive(prelude.DefaultEqual[int]())
	assert.True(t, eq.Equal(box[int]{1}, box[int]{1}))
	assert.False(t, eq.Equal(box[int]{1}, box[int]{2}))

	// An Applicative is usable through each of its parts.
	var c prelude.Covariant[int, string, box[int], box[string]] = app
	assert.Equal(t, box[string]{"0"}, c.Map(f)(box[int]{}))
}
