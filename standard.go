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

package prelude

import "cmp"

// Numeric permits any type that supports + and *.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Sum is addition with identity 0.
func Sum[N Numeric]() Identity[N] {
	return MakeIdentity(N(0), func(l, r N) N { return l + r })
}

// Product is multiplication with identity 1.
func Product[N Numeric]() Identity[N] {
	return MakeIdentity(N(1), func(l, r N) N { return l * r })
}

// Concat is string concatenation with identity "".
func Concat() Identity[string] {
	return MakeIdentity("", func(l, r string) string { return l + r })
}

// SliceConcat appends slices. An empty operand yields the other operand as is;
// otherwise the result is a fresh slice and neither operand is written to.
func SliceConcat[A any]() Identity[[]A] {
	return MakeIdentity([]A(nil), func(l, r []A) []A {
		if len(l) == 0 {
			return r
		}
		if len(r) == 0 {
			return l
		}
		out := make([]A, 0, len(l)+len(r))
		return append(append(out, l...), r...)
	})
}

// Or is disjunction with identity false.
func Or() Identity[bool] {
	return MakeIdentity(false, func(l, r bool) bool { return l || r })
}

// And is conjunction with identity true.
func And() Identity[bool] {
	return MakeIdentity(true, func(l, r bool) bool { return l && r })
}

// Max keeps the greater value. It has no identity over an unbounded type.
func Max[A cmp.Ordered]() Associative[A] {
	return MakeAssociative(func(l, r A) A { return max(l, r) })
}

// Min keeps the lesser value.
func Min[A cmp.Ordered]() Associative[A] {
	return MakeAssociative(func(l, r A) A { return min(l, r) })
}

// First keeps the left value.
func First[A any]() Associative[A] {
	return MakeAssociative(func(l, _ A) A { return l })
}

// Last keeps the right value.
func Last[A any]() Associative[A] {
	return MakeAssociative(func(_, r A) A { return r })
}
