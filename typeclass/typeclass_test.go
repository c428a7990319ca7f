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

package typeclass

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHierarchy() (semigroup, monoid, group *Class) {
	semigroup = NewClass(1, "Associative")
	monoid = NewClass(2, "Identity").Refine(semigroup)
	group = NewClass(3, "Inverse").Refine(monoid)
	return
}

func TestHasSuperClassTransitive(t *testing.T) {
	semigroup, monoid, group := testHierarchy()

	assert.True(t, monoid.HasSuperClass(semigroup))
	assert.True(t, group.HasSuperClass(semigroup))
	assert.False(t, semigroup.HasSuperClass(monoid))
	assert.True(t, group.Satisfies(group))
	assert.True(t, group.Satisfies(semigroup))
	assert.False(t, semigroup.Satisfies(group))
}

func TestAddSuperClassRejectsCycles(t *testing.T) {
	semigroup, monoid, group := testHierarchy()

	err := semigroup.AddSuperClass(group)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicRefinement))

	err = monoid.AddSuperClass(monoid)
	assert.True(t, errors.Is(err, ErrCyclicRefinement))

	// re-adding an existing refinement is a no-op
	require.NoError(t, monoid.AddSuperClass(semigroup))
	assert.Len(t, monoid.Supers(), 1)
}

func TestRefinePanicsOnCycle(t *testing.T) {
	semigroup, _, group := testHierarchy()
	assert.Panics(t, func() { semigroup.Refine(group) })
}

func TestOrder(t *testing.T) {
	semigroup, monoid, group := testHierarchy()
	equal := NewClass(4, "Equal")

	order, err := Order([]*Class{group, equal, monoid, semigroup})
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[string]int)
	for i, c := range order {
		pos[c.Name] = i
	}
	assert.Less(t, pos["Associative"], pos["Identity"])
	assert.Less(t, pos["Identity"], pos["Inverse"])
}

func TestOrderDetectsManualCycle(t *testing.T) {
	a, b := NewClass(1, "A"), NewClass(2, "B")
	// bypass AddSuperClass to corrupt the hierarchy
	a.Super = map[int]*Class{b.Id: b}
	b.Super = map[int]*Class{a.Id: a}

	_, err := Order([]*Class{a, b})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicRefinement))
}

func TestRegistryFindThroughSubClass(t *testing.T) {
	semigroup, monoid, _ := testHierarchy()
	key := KeyOf(reflect.TypeOf(0))

	r := NewRegistry().Add(monoid, key, "sum")

	_, ok := r.Lookup(semigroup, key)
	assert.False(t, ok)

	inst, ok := r.Find(semigroup, key)
	require.True(t, ok)
	assert.Equal(t, "sum", inst.Value)
	assert.Equal(t, monoid, inst.Class)

	_, ok = r.Find(monoid, KeyOf(reflect.TypeOf("")))
	assert.False(t, ok)
}

func TestRegistryExactMatchWins(t *testing.T) {
	semigroup, monoid, _ := testHierarchy()
	key := KeyOf(reflect.TypeOf(0))

	r := NewRegistry().Add(monoid, key, "sum").Add(semigroup, key, "max")

	inst, ok := r.Find(semigroup, key)
	require.True(t, ok)
	assert.Equal(t, "max", inst.Value)
}

func TestRegistryIsPersistent(t *testing.T) {
	_, monoid, _ := testHierarchy()
	key := KeyOf(reflect.TypeOf(0))

	var zero Registry
	r1 := zero.Add(monoid, key, "sum")
	r2 := r1.Add(monoid, key, "product")

	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 1, r1.Len())
	assert.Equal(t, 1, r2.Len())

	inst, _ := r1.Lookup(monoid, key)
	assert.Equal(t, "sum", inst.Value)
	inst, _ = r2.Lookup(monoid, key)
	assert.Equal(t, "product", inst.Value)
}

func TestRegistryRangeOrder(t *testing.T) {
	semigroup, monoid, _ := testHierarchy()
	intKey, stringKey := KeyOf(reflect.TypeOf(0)), KeyOf(reflect.TypeOf(""))
	r := NewRegistry().
		Add(monoid, stringKey, 2).
		Add(semigroup, intKey, 1).
		Add(monoid, intKey, 3)

	var got []int
	r.Range(func(inst Instance) bool {
		got = append(got, inst.Value.(int))
		return true
	})
	assert.Equal(t, []int{1, 3, 2}, got)
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, "[]int,[]string", KeyOf(reflect.TypeOf([]int{}), reflect.TypeOf([]string{})).String())
	assert.Equal(t, "<nil>", KeyOf(nil).String())
	assert.Equal(t, KeyOf(reflect.TypeOf(0)), KeyOf(reflect.TypeOf(1)))
}

func localIDType() reflect.Type {
	type ID int
	return reflect.TypeOf(ID(0))
}

func TestKeyOfSameNameDistinctTypes(t *testing.T) {
	type ID int
	outer, inner := reflect.TypeOf(ID(0)), localIDType()
	require.Equal(t, outer.String(), inner.String())

	k1, k2 := KeyOf(outer), KeyOf(inner)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1.String(), k2.String())

	_, monoid, _ := testHierarchy()
	r := NewRegistry().Add(monoid, k1, "outer").Add(monoid, k2, "inner")
	assert.Equal(t, 2, r.Len())

	inst, ok := r.Lookup(monoid, k1)
	require.True(t, ok)
	assert.Equal(t, "outer", inst.Value)
	inst, ok = r.Lookup(monoid, k2)
	require.True(t, ok)
	assert.Equal(t, "inner", inst.Value)
}
