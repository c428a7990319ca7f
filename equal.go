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

// Equal decides equivalence of two values. It should be reflexive, symmetric
// and transitive.
type Equal[A any] interface {
	Equal(l, r A) bool
}

// EqualFunc adapts a function to Equal.
type EqualFunc[A any] func(l, r A) bool

func (f EqualFunc[A]) Equal(l, r A) bool { return f(l, r) }

// MakeEqual returns an Equal backed by eq.
func MakeEqual[A any](eq func(l, r A) bool) Equal[A] { return EqualFunc[A](eq) }

// DefaultEqual compares with ==.
func DefaultEqual[A comparable]() Equal[A] {
	return EqualFunc[A](func(l, r A) bool { return l == r })
}

// ContramapEqual compares B values by their images under f.
func ContramapEqual[A, B any](eq Equal[A], f func(B) A) Equal[B] {
	return EqualFunc[B](func(l, r B) bool { return eq.Equal(f(l), f(r)) })
}
