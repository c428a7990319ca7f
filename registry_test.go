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
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/tuple"
	"github.com/wdamron/prelude/typeclass"
)

func TestClassesOrder(t *testing.T) {
	classes := prelude.Classes()
	require.Len(t, classes, 7)

	pos := make(map[string]int)
	for i, c := range classes {
		pos[c.Name] = i
	}
	assert.Less(t, pos["Associative"], pos["Identity"])
	assert.Less(t, pos["Covariant"], pos["Applicative"])
	assert.Less(t, pos["IdentityBoth"], pos["Applicative"])
	assert.Less(t, pos["DeriveEqual"], pos["Applicative"])

	assert.True(t, prelude.IdentityClass.Satisfies(prelude.AssociativeClass))
	assert.True(t, prelude.ApplicativeClass.Satisfies(prelude.DeriveEqualClass))
	assert.False(t, prelude.AssociativeClass.Satisfies(prelude.IdentityClass))
}

func TestSummonIdentityAsAssociative(t *testing.T) {
	r := prelude.ProvideIdentity(typeclass.NewRegistry(), prelude.Product[int]())

	s, err := prelude.SummonAssociative[int](r)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Combine(3, 4))

	m, err := prelude.SummonIdentity[int](r)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Identity())
}

func TestSummonAssociativeDoesNotSatisfyIdentity(t *testing.T) {
	r := prelude.ProvideAssociative(typeclass.NewRegistry(), prelude.Max[int]())

	_, err := prelude.SummonIdentity[int](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrNoInstance))
	assert.Contains(t, err.Error(), "Identity for int")
}

func TestSummonWrongType(t *testing.T) {
	r := typeclass.NewRegistry().Add(prelude.IdentityClass, typeclass.KeyOf(reflect.TypeFor[int]()), "not an instance")

	_, err := prelude.SummonIdentity[int](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrInstanceType))
}

func TestStandardRegistry(t *testing.T) {
	r := prelude.Standard()

	sum, err := prelude.SummonIdentity[int](r)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Combine(2, 3))

	concat, err := prelude.SummonAssociative[string](r)
	require.NoError(t, err)
	assert.Equal(t, "ab", concat.Combine("a", "b"))

	or, err := prelude.SummonIdentity[bool](r)
	require.NoError(t, err)
	assert.False(t, or.Identity())

	eq, err := prelude.SummonEqual[float64](r)
	require.NoError(t, err)
	assert.True(t, eq.Equal(1.5, 1.5))

	_, err = prelude.SummonIdentity[uint8](r)
	assert.True(t, errors.Is(err, prelude.ErrNoInstance))
}

func TestSummonDerivedFromRegistry(t *testing.T) {
	r := prelude.Standard()
	sum, err := prelude.SummonIdentity[int](r)
	require.NoError(t, err)
	concat, err := prelude.SummonIdentity[string](r)
	require.NoError(t, err)

	r = prelude.ProvideIdentity(r, prelude.IdentityTuple2(sum, concat))
	pair, err := prelude.SummonIdentity[tuple.Tuple2[int, string]](r)
	require.NoError(t, err)
	assert.Equal(t, tuple.Of2(0, ""), pair.Identity())
}

func TestSummonApplicativeAssembled(t *testing.T) {
	covariant, identityBoth, deriveEqual := boxParts()
	r := typeclass.NewRegistry()
	r = prelude.ProvideCovariant(r, covariant)
	r = prelude.ProvideIdentityBoth(r, identityBoth)

	_, err := prelude.SummonApplicative[int, string, box[int], box[string], box[tuple.Tuple2[int, string]], box[tuple.Unit]](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrNoInstance))

	r = prelude.ProvideDeriveEqual(r, deriveEqual)
	app, err := prelude.SummonApplicative[int, string, box[int], box[string], box[tuple.Tuple2[int, string]], box[tuple.Unit]](r)
	require.NoError(t, err)
	assert.Equal(t, box[string]{"7"}, app.Map(func(n int) string { return string(rune('0' + n)) })(box[int]{7}))
}

func sumID(r typeclass.Registry) (typeclass.Registry, func(typeclass.Registry) (int, error)) {
	type ID int
	r = prelude.ProvideIdentity(r, prelude.InvmapIdentity(prelude.Sum[int](),
		func(n int) ID { return ID(n) }, func(id ID) int { return int(id) }))
	return r, func(r typeclass.Registry) (int, error) {
		m, err := prelude.SummonIdentity[ID](r)
		if err != nil {
			return 0, err
		}
		return int(m.Combine(2, 3)), nil
	}
}

func productID(r typeclass.Registry) (typeclass.Registry, func(typeclass.Registry) (int, error)) {
	type ID int
	r = prelude.ProvideIdentity(r, prelude.InvmapIdentity(prelude.Product[int](),
		func(n int) ID { return ID(n) }, func(id ID) int { return int(id) }))
	return r, func(r typeclass.Registry) (int, error) {
		m, err := prelude.SummonIdentity[ID](r)
		if err != nil {
			return 0, err
		}
		return int(m.Combine(2, 3)), nil
	}
}

func TestProvideSameNamedTypes(t *testing.T) {
	r, combineSum := sumID(typeclass.NewRegistry())
	r, combineProduct := productID(r)
	assert.Equal(t, 2, r.Len())

	n, err := combineSum(r)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = combineProduct(r)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestSummonApplicativeWrongType(t *testing.T) {
	covariant, identityBoth, deriveEqual := boxParts()
	r := typeclass.NewRegistry()
	r = prelude.ProvideCovariant(r, covariant)
	r = prelude.ProvideIdentityBoth(r, identityBoth)
	r = prelude.ProvideDeriveEqual(r, deriveEqual)
	r = r.Add(prelude.ApplicativeClass, typeclass.KeyOf(reflect.TypeFor[box[int]](), reflect.TypeFor[box[string]]()), "not an instance")

	_, err := prelude.SummonApplicative[int, string, box[int], box[string], box[tuple.Tuple2[int, string]], box[tuple.Unit]](r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, prelude.ErrInstanceType))
}
