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

package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeNone(t *testing.T) {
	var zero Option[int]
	assert.True(t, zero.IsNone())
	assert.Equal(t, None[int](), zero)

	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 9, None[int]().OrElse(9))
	assert.Equal(t, 3, Some(3).OrElse(9))
}

func TestString(t *testing.T) {
	assert.Equal(t, "None", None[string]().String())
	assert.Equal(t, "Some(x)", Some("x").String())
}

func TestMapFlatMap(t *testing.T) {
	assert.Equal(t, Some("4"), Map(Some(4), strconv.Itoa))
	assert.Equal(t, None[string](), Map(None[int](), strconv.Itoa))

	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}
	assert.Equal(t, Some(2), FlatMap(Some(4), half))
	assert.Equal(t, None[int](), FlatMap(Some(3), half))
	assert.Equal(t, None[int](), FlatMap(None[int](), half))
}
