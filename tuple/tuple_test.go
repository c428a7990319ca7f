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

package tuple

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesRoundTrip(t *testing.T) {
	t2 := Of2(3, "ab")
	assert.Equal(t, 2, t2.Arity())
	assert.Equal(t, []any{3, "ab"}, t2.Values())
	assert.Equal(t, t2, From2[int, string](t2.Values()))

	t3 := Of3(0, 1, false)
	assert.Equal(t, t3, From3[int, int, bool](t3.Values()))
}

func TestNilInterfaceSlot(t *testing.T) {
	var err error
	t2 := Of2(err, 1)
	got := From2[error, int](t2.Values())
	assert.Nil(t, got.V1)
	assert.Equal(t, 1, got.V2)

	t2 = Of2(errors.New("boom"), 2)
	assert.Equal(t, t2, From2[error, int](t2.Values()))
}

func TestTuple22(t *testing.T) {
	t22 := Of22(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, "last")
	vs := t22.Values()
	assert.Len(t, vs, 22)
	assert.Equal(t, 22, t22.Arity())
	assert.Equal(t, "last", vs[21])
	assert.Equal(t, t22, From22[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, string](vs))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, 0, Unit{}.Arity())
	assert.Empty(t, Unit{}.Values())
	assert.Equal(t, Unit{}, FromUnit(nil))
}

func TestFromRejectsMismatchedSlot(t *testing.T) {
	assert.PanicsWithValue(t, "tuple: slot 2 holds string, want int", func() {
		From2[int, int]([]any{1, "x"})
	})
	assert.Panics(t, func() { From3[int, int, int]([]any{1, 2}) })
}
